// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the geometry primitives used to describe the model
package geo

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
)

// units of angles
const (
	Deg = "deg"
	Rad = "rad"
)

// Point holds the coordinates of a point in model-length units
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// P returns a new point
func P(x, y float64) Point { return Point{x, y} }

// Equal compares coordinates exactly
func (o Point) Equal(p Point) bool { return o.X == p.X && o.Y == p.Y }

// Add returns o + (dx, dy)
func (o Point) Add(dx, dy float64) Point { return Point{o.X + dx, o.Y + dy} }

// Dist returns the distance between o and p
func (o Point) Dist(p Point) float64 { return math.Hypot(p.X-o.X, p.Y-o.Y) }

// String returns a JSON representation of Point
func (o Point) String() string { return io.Sf("{\"x\":%g, \"y\":%g}", o.X, o.Y) }

// Angle holds a scalar angle and its unit
type Angle struct {
	value float64
	unit  string
}

// NewAngle returns a new angle
//  unit -- "deg" or "rad" (long forms such as "degrees" and "radians" are accepted)
func NewAngle(value float64, unit string) (Angle, error) {
	u, ok := normUnit(unit)
	if !ok {
		return Angle{}, errs.New(errs.ErrInvalidUnit, "angle", "unit %q is not recognised; options are \"deg\" and \"rad\"", unit)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Angle{}, errs.New(errs.ErrInvalidParameter, "angle", "value must be finite; value=%g", value)
	}
	return Angle{value, u}, nil
}

// Degrees returns a new angle in degrees
func Degrees(value float64) Angle { return Angle{value, Deg} }

// Radians returns a new angle in radians
func Radians(value float64) Angle { return Angle{value, Rad} }

// Value returns the stored value (in the stored unit)
func (o Angle) Value() float64 { return o.value }

// Unit returns the stored unit
func (o Angle) Unit() string {
	if o.unit == "" {
		return Rad
	}
	return o.unit
}

// Rad returns the angle in radians
func (o Angle) Rad() float64 {
	if o.unit == Deg {
		return o.value * math.Pi / 180.0
	}
	return o.value
}

// Deg returns the angle in degrees
func (o Angle) Deg() float64 {
	if o.unit == Deg {
		return o.value
	}
	return o.value * 180.0 / math.Pi
}

// Sin returns the sine of the angle
func (o Angle) Sin() float64 { return math.Sin(o.Rad()) }

// Cos returns the cosine of the angle
func (o Angle) Cos() float64 { return math.Cos(o.Rad()) }

// Tan returns the tangent of the angle
func (o Angle) Tan() float64 { return math.Tan(o.Rad()) }

// String returns the angle with its unit
func (o Angle) String() string { return io.Sf("%g %s", o.value, o.Unit()) }

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func normUnit(unit string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "deg", "degree", "degrees", "°":
		return Deg, true
	case "rad", "radian", "radians":
		return Rad, true
	}
	return "", false
}
