// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements the constitutive laws assigned to layers
//  The set of laws is closed: MohrCoulomb and Hardening are the only implementations of Law,
//  thus exporters can switch exhaustively over them (see Switch).
//  Laws are immutable after construction and may be shared by many layers.
package mat

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/fcdiass/damagezone/errs"
)

// Law defines a constitutive law
type Law interface {
	Name() string       // model name; e.g. "mc", "hardening"
	Young() float64     // Young's modulus E
	Poisson() float64   // Poisson's coefficient ν
	Bulk() float64      // bulk modulus K
	Shear() float64     // shear modulus G
	Params() dbf.Params // parameters (a new list on every call)
	String() string     // JSON representation
	law()               // seals the set of laws
}

// Curves holds named tabulated curves given to the factory; e.g. "pc" and "pt"
type Curves map[string]Curve

// New allocates and initialises a law from its model name and parameters
func New(model string, prms dbf.Params, curves Curves) (Law, error) {
	allocator, ok := allocators[model]
	if !ok {
		return nil, errs.New(errs.ErrInvalidParameter, "material", "model %q is not available in 'mat' database; options are %v", model, Models())
	}
	return allocator(prms, curves)
}

// Models returns the names of all available models
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Switch calls the function corresponding to the concrete type of law
func Switch(law Law, onMohrCoulomb func(*MohrCoulomb) error, onHardening func(*Hardening) error) error {
	switch m := law.(type) {
	case *MohrCoulomb:
		return onMohrCoulomb(m)
	case *Hardening:
		return onHardening(m)
	}
	return errs.New(errs.ErrInvalidParameter, "material", "law %T is not supported", law)
}

// allocators holds all available laws; modelname => allocator
var allocators = map[string]func(prms dbf.Params, curves Curves) (Law, error){}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// checkElastic checks the elastic parameters
func checkElastic(entity string, E, ν float64) error {
	if !(E > 0) || math.IsInf(E, 0) {
		return errs.New(errs.ErrInvalidParameter, entity, "Young's modulus must be positive; E=%g", E)
	}
	if !(ν > 0 && ν < 0.5) {
		return errs.New(errs.ErrInvalidParameter, entity, "Poisson's coefficient must be in (0, 0.5); nu=%g", ν)
	}
	return nil
}

// checkAngle checks friction-like angles given in degrees
func checkAngle(entity, name string, φ float64) error {
	if !(φ >= 0 && φ < 90) {
		return errs.New(errs.ErrInvalidParameter, entity, "%s must be in [0°, 90°); %s=%g", name, name, φ)
	}
	return nil
}

// elasticModuli computes K and G from E and ν
func elasticModuli(E, ν float64) (K, G float64) {
	K = E / (3.0 * (1.0 - 2.0*ν))
	G = E / (2.0 * (1.0 + ν))
	return
}

// unknownParam returns the error for a parameter that does not belong to a model
func unknownParam(model, name string) error {
	return errs.New(errs.ErrInvalidParameter, "material", "%s: parameter named %q is incorrect", model, name)
}
