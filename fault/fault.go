// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fault implements the fault descriptor and the lateral distribution of its damage zone
package fault

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/fcdiass/damagezone/errs"
	"github.com/fcdiass/damagezone/geo"
)

// NptsCheck is the number of points used to check distributions
const NptsCheck = 101

// Descriptor holds a fault segment and the distribution of its damage zone
//
//         tip1  (t=1)
//          /
//         /  ← angle measured from the x-axis
//        ●  center (t=0.5)
//       /
//      /
//   tip0  (t=0)
//
type Descriptor struct {
	Length       float64      // length of fault (> 0)
	Angle        geo.Angle    // inclination
	Center       geo.Point    // midpoint
	Distribution Distribution // half-width of damage zone along the fault
}

// NewByLenAng returns a new fault given its length, angle and center point
//  dist -- distribution of damage zone; nil => UniformZeroWidth. dist is copied
func NewByLenAng(length float64, angle geo.Angle, center geo.Point, dist Distribution) (*Descriptor, error) {
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, errs.New(errs.ErrInvalidGeometry, "fault", "length must be positive; length=%g", length)
	}
	if dist == nil {
		dist = UniformZeroWidth
	}
	dist = dist.Copy()
	if err := CheckDistribution(dist, NptsCheck); err != nil {
		return nil, err
	}
	return &Descriptor{length, angle, center, dist}, nil
}

// NewByPoints returns a new fault given its tips
func NewByPoints(tip0, tip1 geo.Point, dist Distribution) (*Descriptor, error) {
	length := tip0.Dist(tip1)
	if length == 0 {
		return nil, errs.New(errs.ErrInvalidGeometry, "fault", "tips must not coincide; tip=%v", tip0)
	}
	angle := geo.Radians(math.Atan2(tip1.Y-tip0.Y, tip1.X-tip0.X))
	center := geo.P((tip0.X+tip1.X)/2.0, (tip0.Y+tip1.Y)/2.0)
	return NewByLenAng(length, angle, center, dist)
}

// Tips returns the end points of the fault
func (o *Descriptor) Tips() (tip0, tip1 geo.Point) {
	return o.PointAt(0), o.PointAt(1)
}

// PointAt returns the point at normalised position t ∈ [0,1]
func (o *Descriptor) PointAt(t float64) geo.Point {
	s := (t - 0.5) * o.Length
	return o.Center.Add(s*o.Angle.Cos(), s*o.Angle.Sin())
}

// Normal returns the unit normal to the fault (rotated +90° from its direction)
func (o *Descriptor) Normal() (nx, ny float64) {
	return -o.Angle.Sin(), o.Angle.Cos()
}

// Width returns the half-width of the damage zone at normalised position t
func (o *Descriptor) Width(t float64) float64 {
	return o.Distribution.Width(t)
}

// Envelope returns the two polylines bounding the damage zone, each with npts points,
// obtained by offsetting the fault by the half-width along its normal
func (o *Descriptor) Envelope(npts int) (hanging, foot []geo.Point) {
	if npts < 2 {
		npts = 2
	}
	nx, ny := o.Normal()
	hanging = make([]geo.Point, npts)
	foot = make([]geo.Point, npts)
	for i, t := range utl.LinSpace(0, 1, npts) {
		p := o.PointAt(t)
		w := o.Width(t)
		hanging[i] = p.Add(w*nx, w*ny)
		foot[i] = p.Add(-w*nx, -w*ny)
	}
	return
}

// Copy returns a deep copy of the descriptor
func (o *Descriptor) Copy() *Descriptor {
	if o == nil {
		return nil
	}
	res := *o
	if o.Distribution != nil {
		res.Distribution = o.Distribution.Copy()
	}
	return &res
}

// String returns a JSON representation of Descriptor
func (o *Descriptor) String() string {
	tip0, tip1 := o.Tips()
	return io.Sf("{\"length\":%g, \"angle\":%q, \"center\":%v, \"distribution\":%q, \"tips\":[%v, %v]}",
		o.Length, o.Angle.String(), o.Center, o.Distribution.Name(), tip0, tip1)
}
