// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inicond implements initial stress fields and their compatibility with the layers
//  Sign convention: compression is negative
package inicond

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
)

// K0Auto in the K0s of a Linear field selects K0 = ν/(1-ν) of the layer's material
const K0Auto = -1.0

// Field defines an initial stress field. The set of fields is closed: Constant and Linear
type Field interface {
	Name() string   // "constant" or "linear"
	String() string // JSON representation
	field()         // seals the set of fields
}

// Constant holds a uniform stress field
//  σv = Sv   and   σh = K0・Sv
type Constant struct {
	Sv float64 // vertical stress
	K0 float64 // earth-pressure coefficient σh/σv (≥ 0)
}

// NewConstant returns a new uniform field
func NewConstant(sv, k0 float64) (*Constant, error) {
	if math.IsNaN(sv) || math.IsInf(sv, 0) {
		return nil, errs.New(errs.ErrInvalidStressProfile, "constant", "vertical stress must be finite; sv=%g", sv)
	}
	if err := checkK0("constant", 0, k0); err != nil {
		return nil, err
	}
	return &Constant{sv, k0}, nil
}

// Name returns "constant"
func (o *Constant) Name() string { return "constant" }

// String returns a JSON representation of Constant
func (o *Constant) String() string {
	return io.Sf("{\"type\":\"constant\", \"sv\":%g, \"k0\":%g}", o.Sv, o.K0)
}

func (o *Constant) field() {}

// Linear holds a field varying linearly with depth within each layer
//
//   σv(top of stack) = Surface
//   σv(bottom of i)  = σv(top of i) - Gradients[i]・thickness[i]
//   σh               = K0s[i]・σv
//
//  Gradients and K0s have one value per layer, or a single value for all layers.
//  K0Auto is replaced by ν/(1-ν) of the layer's material
type Linear struct {
	Surface   float64   // vertical stress at the top of the stack
	Gradients []float64 // vertical stress gradient of each layer
	K0s       []float64 // earth-pressure coefficient of each layer (≥ 0 or K0Auto)
}

// NewLinear returns a new depth-linear field. The slices are copied
func NewLinear(surface float64, gradients, k0s []float64) (*Linear, error) {
	if math.IsNaN(surface) || math.IsInf(surface, 0) {
		return nil, errs.New(errs.ErrInvalidStressProfile, "linear", "surface value must be finite; surface=%g", surface)
	}
	if len(gradients) == 0 {
		return nil, errs.New(errs.ErrInvalidStressProfile, "linear", "at least one gradient must be given")
	}
	if len(k0s) == 0 {
		return nil, errs.New(errs.ErrInvalidStressProfile, "linear", "at least one K0 must be given")
	}
	for i, g := range gradients {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return nil, errs.New(errs.ErrInvalidStressProfile, "linear", "gradient %d must be finite; gradient=%g", i, g)
		}
	}
	for i, k0 := range k0s {
		if k0 == K0Auto {
			continue
		}
		if err := checkK0("linear", i, k0); err != nil {
			return nil, err
		}
	}
	return &Linear{
		Surface:   surface,
		Gradients: append([]float64{}, gradients...),
		K0s:       append([]float64{}, k0s...),
	}, nil
}

// Name returns "linear"
func (o *Linear) Name() string { return "linear" }

// Resolve returns gradients and K0s with one value per layer (broadcasting single values)
func (o *Linear) Resolve(nlayers int) (gradients, k0s []float64, err error) {
	gradients, err = broadcast("gradients", o.Gradients, nlayers)
	if err != nil {
		return
	}
	k0s, err = broadcast("k0s", o.K0s, nlayers)
	return
}

// String returns a JSON representation of Linear
func (o *Linear) String() string {
	return io.Sf("{\"type\":\"linear\", \"surface\":%g, \"gradients\":%v, \"k0s\":%v}", o.Surface, o.Gradients, o.K0s)
}

func (o *Linear) field() {}

// Resolve checks field against the number of layers
func Resolve(field Field, nlayers int) error {
	switch f := field.(type) {
	case *Constant:
		return nil
	case *Linear:
		_, _, err := f.Resolve(nlayers)
		return err
	case nil:
		return errs.New(errs.ErrInvalidStressProfile, "stress", "field must not be nil")
	}
	return errs.New(errs.ErrInvalidStressProfile, "stress", "field %T is not supported", field)
}

// Copy returns a deep copy of field
func Copy(field Field) Field {
	switch f := field.(type) {
	case *Constant:
		c := *f
		return &c
	case *Linear:
		return &Linear{f.Surface, append([]float64{}, f.Gradients...), append([]float64{}, f.K0s...)}
	}
	return field
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func checkK0(entity string, idx int, k0 float64) error {
	if !(k0 >= 0) || math.IsInf(k0, 0) {
		return errs.New(errs.ErrInvalidStressProfile, entity, "K0 must be non-negative; K0[%d]=%g", idx, k0)
	}
	return nil
}

func broadcast(name string, vals []float64, nlayers int) ([]float64, error) {
	if len(vals) == 1 {
		res := make([]float64, nlayers)
		for i := range res {
			res[i] = vals[0]
		}
		return res, nil
	}
	if len(vals) != nlayers {
		return nil, errs.New(errs.ErrInvalidStressProfile, "linear", "number of %s (%d) must equal the number of layers (%d) or be 1", name, len(vals), nlayers)
	}
	return append([]float64{}, vals...), nil
}
