// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dzone

import (
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"

	"github.com/fcdiass/damagezone/fault"
	"github.com/fcdiass/damagezone/inicond"
	"github.com/fcdiass/damagezone/layers"
)

// Specification holds a complete and validated model. It is immutable: accessors return copies
type Specification struct {
	id     string            // unique identifier of this snapshot
	fault  *fault.Descriptor // fault; may be nil
	stack  *layers.Stack     // layers and borders
	stress inicond.Field     // initial stress field
	verify bool              // compatibility was checked
	debug  bool              // flag for external collaborators
}

// newSpecification returns a snapshot with deep copies of the components
func newSpecification(f *fault.Descriptor, stack *layers.Stack, stress inicond.Field, verify, debug bool) *Specification {
	return &Specification{
		id:     uuid.New().String(),
		fault:  f.Copy(),
		stack:  stack.Copy(),
		stress: inicond.Copy(stress),
		verify: verify,
		debug:  debug,
	}
}

// ID returns the identifier of the snapshot
func (o *Specification) ID() string { return o.id }

// HasFault tells whether the model has a fault
func (o *Specification) HasFault() bool { return o.fault != nil }

// Fault returns a copy of the fault or nil
func (o *Specification) Fault() *fault.Descriptor { return o.fault.Copy() }

// Layers returns a copy of the layer stack
func (o *Specification) Layers() *layers.Stack { return o.stack.Copy() }

// Stress returns a copy of the initial stress field
func (o *Specification) Stress() inicond.Field { return inicond.Copy(o.stress) }

// VerifyCompatibility tells whether the stress field was checked against the materials
func (o *Specification) VerifyCompatibility() bool { return o.verify }

// Debug returns the debug flag
func (o *Specification) Debug() bool { return o.debug }

// NumLayers returns the number of layers
func (o *Specification) NumLayers() int { return o.stack.NumLayers() }

// Profile computes the initial stresses at the top and bottom of each layer
func (o *Specification) Profile() (*inicond.Profile, error) {
	return inicond.NewProfile(inicond.Copy(o.stress), o.stack.Copy())
}

// String returns a JSON representation of Specification
func (o *Specification) String() string {
	f := "null"
	if o.fault != nil {
		f = o.fault.String()
	}
	return io.Sf("{\"id\":%q, \"fault\":%s, \"layers\":%v, \"stress\":%v, \"verify\":%v, \"debug\":%v}",
		o.id, f, o.stack, o.stress, o.verify, o.debug)
}
