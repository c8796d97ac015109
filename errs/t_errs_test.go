// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_errs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errs01")

	err := New(ErrInvalidGeometry, "fault", "length must be positive; length=%g", -1.0)
	chk.String(tst, err.Error(), "fault: invalid geometry: length must be positive; length=-1")
	if !Is(err, ErrInvalidGeometry) {
		tst.Errorf("error should be of kind %v\n", ErrInvalidGeometry)
		return
	}
	if Is(err, ErrInvalidParameter) {
		tst.Errorf("error should not be of kind %v\n", ErrInvalidParameter)
		return
	}
	if KindOf(err) != ErrInvalidGeometry {
		tst.Errorf("KindOf failed\n")
	}
	chk.String(tst, EntityOf(err), "fault")
}

func Test_errs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errs02. wrapping")

	cause := errors.New("gmsh crashed")
	err := Wrap(ErrMeshGeneration, "mesh", cause)
	if !errors.Is(err, ErrMeshGeneration) {
		tst.Errorf("wrapped error should be a mesh generation error\n")
		return
	}
	if !errors.Is(err, cause) {
		tst.Errorf("wrapped error should keep its cause\n")
		return
	}
	chk.String(tst, err.Error(), "mesh: mesh generation error: gmsh crashed")

	if Wrap(ErrMeshGeneration, "mesh", nil) != nil {
		tst.Errorf("wrapping nil should give nil\n")
	}
	if KindOf(cause) != nil {
		tst.Errorf("KindOf of foreign error should be nil\n")
	}
}
