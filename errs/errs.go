// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs implements the error kinds raised while building a damage-zone model
package errs

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// kinds of errors
var (
	ErrInvalidUnit              = errors.New("invalid unit")
	ErrInvalidGeometry          = errors.New("invalid geometry")
	ErrInvalidParameter         = errors.New("invalid parameter")
	ErrMissingGeometry          = errors.New("missing geometry")
	ErrInvalidLayerCount        = errors.New("invalid layer count")
	ErrInvalidStressProfile     = errors.New("invalid stress profile")
	ErrIncompatibleInitialState = errors.New("incompatible initial state")
	ErrIncompleteModel          = errors.New("incomplete model")
	ErrMeshGeneration           = errors.New("mesh generation error")
)

// Error holds the kind of failure, the entity that failed and the violated constraint
type Error struct {
	Kind   error  // one of the Err... kinds above
	Entity string // entity that failed; e.g. "angle", "fault", "material[0]"
	Msg    string // violated constraint
	Err    error  // underlying error, if any
}

// New returns a new error of given kind
func New(kind error, entity, msg string, prm ...interface{}) error {
	return &Error{Kind: kind, Entity: entity, Msg: io.Sf(msg, prm...)}
}

// Wrap returns a new error of given kind holding an underlying error
func Wrap(kind error, entity string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Entity: entity, Msg: err.Error(), Err: err}
}

// Error returns the message
func (o *Error) Error() string {
	if o == nil {
		return "<nil>"
	}
	if o.Entity == "" {
		return io.Sf("%v: %s", o.Kind, o.Msg)
	}
	return io.Sf("%s: %v: %s", o.Entity, o.Kind, o.Msg)
}

// Unwrap returns the kind and the underlying error
func (o *Error) Unwrap() []error {
	if o == nil {
		return nil
	}
	if o.Err != nil {
		return []error{o.Kind, o.Err}
	}
	return []error{o.Kind}
}

// Is tells whether err is of given kind
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}

// KindOf returns the kind of err or nil if err was not created by this package
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}

// EntityOf returns the entity of err or "" if err was not created by this package
func EntityOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Entity
	}
	return ""
}
