// seehuhn.de/go/shapes - synthetic image datasets of simple shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shapes

import (
	"errors"
	"strconv"
)

// Causes wrapped by the error types below.
var (
	ErrUnknownDistribution = errors.New("unknown distribution family")
	ErrBadParameters       = errors.New("invalid distribution parameters")
	ErrBadColor            = errors.New("malformed color specification")
	ErrUnknownShape        = errors.New("unknown shape")
	ErrOutOfRange          = errors.New("value out of range")
	ErrNotFinite           = errors.New("value is not finite")
)

// ConfigurationError is returned when a configuration value cannot be
// used, for example an unknown distribution family or a malformed color.
// These errors occur at construction time, before any sampling or
// rendering.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (err *ConfigurationError) Error() string {
	msg := "shapes: invalid configuration"
	if err.Field != "" {
		msg += " for " + err.Field
	}
	if err.Value != "" {
		msg += " " + strconv.Quote(err.Value)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ConfigurationError) Unwrap() error {
	return err.Err
}

// ValidationKind classifies a ValidationError.
type ValidationKind int

// These are the possible validation failures.
const (
	UnknownFactor ValidationKind = iota
	DuplicateFactor
	InvalidValue
)

func (k ValidationKind) String() string {
	switch k {
	case UnknownFactor:
		return "unknown factor"
	case DuplicateFactor:
		return "duplicate factor"
	case InvalidValue:
		return "invalid value"
	default:
		return "ValidationKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ValidationError is returned when a factor schema or a sample
// description is invalid.
type ValidationError struct {
	Kind   ValidationKind
	Factor Factor
	Err    error
}

func (err *ValidationError) Error() string {
	msg := "shapes: " + err.Kind.String() + " " + strconv.Quote(string(err.Factor))
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

// ShapeMismatchError is returned when the length of a latent vector does
// not match the length of the factor schema.
type ShapeMismatchError struct {
	Want int
	Got  int
}

func (err *ShapeMismatchError) Error() string {
	return "shapes: latent vector has " + strconv.Itoa(err.Got) +
		" values, factor schema has " + strconv.Itoa(err.Want)
}
