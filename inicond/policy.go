// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inicond

import (
	"github.com/cpmech/gosl/io"

	"github.com/fcdiass/damagezone/errs"
	"github.com/fcdiass/damagezone/layers"
	"github.com/fcdiass/damagezone/mat"
)

// Policy decides whether an initial stress state is admissible for a material
type Policy interface {
	Check(layer int, law mat.Law, st StressState) error
}

// PolicyFunc adapts a function to Policy
type PolicyFunc func(layer int, law mat.Law, st StressState) error

// Check calls f(layer, law, st)
func (f PolicyFunc) Check(layer int, law mat.Law, st StressState) error {
	return f(layer, law, st)
}

// DefaultPolicy implements the default compatibility rules
//
//  Hardening:   with p = -(σv + 2σh)/3,
//               p ≤ first point of hardening curve (initial yield stress)
//               p ≥ first point of softening curve (tensile limit)
//
//  MohrCoulomb: f(σ1, σ3) ≤ 0 (inside the yield envelope)
//
type DefaultPolicy struct {
	Tol float64 // tolerance on the violation
}

// Check checks st against law
func (o DefaultPolicy) Check(layer int, law mat.Law, st StressState) error {
	entity := io.Sf("layer[%d]", layer)
	return mat.Switch(law, func(m *mat.MohrCoulomb) error {
		σ1, σ3 := st.Principal()
		if f := m.YieldFunc(σ1, σ3); f > o.Tol {
			return errs.New(errs.ErrIncompatibleInitialState, entity,
				"stress state %v is outside the Mohr-Coulomb envelope; f=%g", st, f)
		}
		return nil
	}, func(m *mat.Hardening) error {
		p := st.Mean()
		if py := m.YieldStress(); p > py+o.Tol {
			return errs.New(errs.ErrIncompatibleInitialState, entity,
				"mean stress p=%g exceeds the initial yield stress of the hardening curve (%g)", p, py)
		}
		if pt := m.TransitionStress(); p < pt-o.Tol {
			return errs.New(errs.ErrIncompatibleInitialState, entity,
				"mean stress p=%g is below the tensile limit of the softening curve (%g)", p, pt)
		}
		return nil
	})
}

// Check checks the states at the top and bottom of every layer against the layer's material
//  policy -- nil => DefaultPolicy{}
//  Within a layer the stresses vary linearly; the default rules are convex, so checking the
//  end points covers the whole layer
func Check(field Field, stack *layers.Stack, policy Policy) error {
	prof, err := NewProfile(field, stack)
	if err != nil {
		return err
	}
	if policy == nil {
		policy = DefaultPolicy{}
	}
	for _, lay := range prof.Layers {
		law := stack.Layers[lay.Index].Material
		for _, st := range []StressState{lay.Top, lay.Bottom} {
			if err = policy.Check(lay.Index, law, st); err != nil {
				return err
			}
		}
	}
	return nil
}
