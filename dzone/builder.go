// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dzone implements the assembly of damage-zone models
//  A Builder accumulates the fault, the layer stack, the initial stress field and the
//  boundary conditions; each operation validates its input immediately. Build returns an
//  immutable Specification that is handed to the mesh and export collaborators (see Run).
package dzone

import (
	"github.com/cpmech/gosl/utl"

	"github.com/fcdiass/damagezone/errs"
	"github.com/fcdiass/damagezone/fault"
	"github.com/fcdiass/damagezone/geo"
	"github.com/fcdiass/damagezone/inicond"
	"github.com/fcdiass/damagezone/layers"
	"github.com/fcdiass/damagezone/mat"
)

// Builder assembles a model specification
type Builder struct {
	fault         *fault.Descriptor // the fault (optional)
	stack         *layers.Stack     // layers and borders
	stress        inicond.Field     // initial stress field
	verify        bool              // check compatibility between stress and materials
	lastBorder    geo.Polygon       // last configured border
	defaultBorder geo.Polygon       // border used when none was ever given
	debug         bool              // flag for external collaborators
	policy        inicond.Policy    // compatibility rule
}

// NewBuilder returns a new builder with the default compatibility policy
func NewBuilder() *Builder {
	return &Builder{verify: true, policy: inicond.DefaultPolicy{}}
}

// AddFaultByLengthAngle adds the fault given its length, inclination and center
//  dist -- nil => zero-width uniform damage zone
func (o *Builder) AddFaultByLengthAngle(length float64, angle geo.Angle, center geo.Point, dist fault.Distribution) error {
	f, err := fault.NewByLenAng(length, angle, center, dist)
	if err != nil {
		return err
	}
	return o.AddFault(f)
}

// AddFault adds a fault. Only one fault is allowed; if the layers are set, the fault must lie
// within their border
func (o *Builder) AddFault(f *fault.Descriptor) error {
	if f == nil {
		return errs.New(errs.ErrInvalidGeometry, "fault", "fault must not be nil")
	}
	if o.fault != nil {
		return errs.New(errs.ErrInvalidGeometry, "fault", "only one fault is allowed per model")
	}
	c := f.Copy()
	if err := fault.CheckDistribution(c.Distribution, fault.NptsCheck); err != nil {
		return err
	}
	if o.stack != nil {
		if err := faultInside(c, o.stack.Border); err != nil {
			return err
		}
	}
	o.fault = c
	return nil
}

// SetDefaultBorder sets the border used by SetLayers when no border was ever given
//  points -- polygon with ≥ 3 points; or two opposite corners of a rectangle
func (o *Builder) SetDefaultBorder(points []geo.Point) error {
	poly, err := border(points)
	if err != nil {
		return err
	}
	o.defaultBorder = poly
	return nil
}

// SetLayers sets the stack of layers
//  materials -- one law per layer; or a single law broadcast to all divisions
//  divisions -- subdivision count of each layer; may be empty
//  points    -- polygon with ≥ 3 points; or two opposite corners of a rectangle; or nil
//
//  Border precedence: given points, then the last configured border, then the default border.
//  If a fault was added, it must lie within the border
func (o *Builder) SetLayers(materials []mat.Law, divisions []int, points []geo.Point) error {
	var poly geo.Polygon
	switch {
	case len(points) > 0:
		p, err := border(points)
		if err != nil {
			return err
		}
		poly = p
	case o.lastBorder != nil:
		poly = o.lastBorder
	case o.defaultBorder != nil:
		poly = o.defaultBorder
	default:
		return errs.New(errs.ErrMissingGeometry, "layers", "border must be given since no border was set before")
	}
	stack, err := layers.New(materials, divisions, poly)
	if err != nil {
		return err
	}
	if o.fault != nil {
		if err = faultInside(o.fault, stack.Border); err != nil {
			return err
		}
	}
	o.stack = stack
	o.lastBorder = stack.Border.Copy()
	return nil
}

// FixDofs sets the fixed degrees of freedom of one border (last write wins)
func (o *Builder) FixDofs(idx int, dofs ...layers.Dof) error {
	if o.stack == nil {
		return errs.New(errs.ErrIncompleteModel, "border", "layers must be set before fixing degrees of freedom")
	}
	return o.stack.SetDofsFixed(idx, dofs...)
}

// FixAllDofs sets the fixed degrees of freedom of all borders
func (o *Builder) FixAllDofs(dofs ...layers.Dof) error {
	if o.stack == nil {
		return errs.New(errs.ErrIncompleteModel, "border", "layers must be set before fixing degrees of freedom")
	}
	return o.stack.FixAll(dofs...)
}

// SetStress sets the initial stress field
//  verify -- check the compatibility of the field with the materials of the layers;
//            false skips the check and the caller accepts responsibility
func (o *Builder) SetStress(field inicond.Field, verify bool) error {
	if field == nil {
		return errs.New(errs.ErrInvalidStressProfile, "stress", "field must not be nil")
	}
	_, linear := field.(*inicond.Linear)
	if o.stack == nil {
		if linear || verify {
			return errs.New(errs.ErrIncompleteModel, "stress", "layers must be set before a %s field or a compatibility check", field.Name())
		}
	} else {
		if err := o.checkStress(field, verify); err != nil {
			return err
		}
	}
	o.stress = inicond.Copy(field)
	o.verify = verify
	return nil
}

// SetDebug sets the debug flag carried by the specification
func (o *Builder) SetDebug(debug bool) {
	o.debug = debug
}

// SetPolicy sets the compatibility rule; nil => inicond.DefaultPolicy{}
func (o *Builder) SetPolicy(policy inicond.Policy) {
	if policy == nil {
		policy = inicond.DefaultPolicy{}
	}
	o.policy = policy
}

// Build checks the model and returns a snapshot that is not affected by further changes
// to the builder
func (o *Builder) Build() (*Specification, error) {

	// required components
	if o.stack == nil {
		return nil, errs.New(errs.ErrIncompleteModel, "model", "layers must be set")
	}
	if o.stress == nil {
		return nil, errs.New(errs.ErrIncompleteModel, "model", "initial stress must be set")
	}

	// stress against layers
	if err := o.checkStress(o.stress, o.verify); err != nil {
		return nil, err
	}

	// fault within border
	if o.fault != nil {
		if err := faultInside(o.fault, o.stack.Border); err != nil {
			return nil, err
		}
	}

	// snapshot
	return newSpecification(o.fault, o.stack, o.stress, o.verify, o.debug), nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// checkStress checks field against the stack
func (o *Builder) checkStress(field inicond.Field, verify bool) error {
	if err := inicond.Resolve(field, o.stack.NumLayers()); err != nil {
		return err
	}
	if verify {
		return inicond.Check(field, o.stack, o.policy)
	}
	return nil
}

// faultInside checks that the fault lies within the border
func faultInside(f *fault.Descriptor, border geo.Polygon) error {
	for _, t := range utl.LinSpace(0, 1, fault.NptsCheck) {
		if p := f.PointAt(t); !border.Contains(p) {
			return errs.New(errs.ErrInvalidGeometry, "fault", "point %v at t=%g is outside the border", p, t)
		}
	}
	return nil
}

// border returns the polygon defined by points; two points define a rectangle
func border(points []geo.Point) (geo.Polygon, error) {
	if len(points) == 2 {
		return geo.NewPolygon(geo.Box(points[0], points[1]))
	}
	return geo.NewPolygon(points)
}
