/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides the error types shared by every dxenigma package.
//
// dxenigma distinguishes two kinds of failure:
//
//   - Configuration failures: the machine was described or set up with data
//     that cannot work (a bad alphabet, malformed cycle notation, an unknown
//     rotor name, a settings string of the wrong length, a pawl count that
//     does not match the inserted rotors, and so on). These are reported
//     before any symbol is converted.
//
//   - Operation failures: a well-formed machine was asked to do something its
//     parts physically cannot (advance a fixed rotor, turn a reflector, run a
//     reflector backwards, convert a symbol outside the alphabet).
//
// Every error type in this package is a simple value carrier with a stable
// message format. Callers classify errors with the standard library:
//
//	if errors.Is(err, dxerrors.ErrConfiguration) { ... }
//	if errors.Is(err, dxerrors.ErrOperation) { ... }
//
// ConfigurationError, ParseError, UnmarshalError and ValidationError all
// match ErrConfiguration. OperationError matches ErrOperation. MarshalError
// matches neither; it signals a programming error (an invalid enum value
// reaching an encoder).
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type (for example a
//     rotor Kind) fails.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when unmarshaling JSON or YAML into a typed value fails.
//
//   - ValidationError
//     Returned by Validate methods of model types.
//
//   - ConfigurationError
//     Returned when a machine component is constructed or set up with
//     inconsistent data.
//
//   - OperationError
//     Returned when a component is asked to perform an impossible action.
package errors

import (
	stderrors "errors"
	"strconv"
)

// Sentinel values identifying the two failure kinds. They are never returned
// directly; the typed errors below report a match through their Is methods.
var (
	// ErrConfiguration is matched by every error caused by bad machine
	// configuration data.
	ErrConfiguration = stderrors.New("dxenigma: configuration error")

	// ErrOperation is matched by every error caused by an impossible
	// operation on a configured machine.
	ErrOperation = stderrors.New("dxenigma: operation error")
)

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Kind"), and
// Value contains the exact string that could not be interpreted.
//
// # Example
//
//	func ParseKind(s string) (Kind, error) {
//	    switch s {
//	    case "moving":
//	        return KindMoving, nil
//	    default:
//	        // "dxenigma: invalid Kind value: <value>"
//	        return KindFixed, &errors.ParseError{Type: "Kind", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Kind").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxenigma: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxenigma: invalid " + e.Type + " value: " + e.Value
}

// Is reports that a ParseError is a configuration failure.
func (e *ParseError) Is(target error) bool {
	return target == ErrConfiguration
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// This error is a guardrail: it prevents invalid enum-like values from being
// silently emitted into JSON, YAML or text. In most cases a MarshalError
// indicates a programming error (for example, an unchecked numeric cast).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxenigma: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxenigma: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload, and Reason provides a human-readable description of
// what went wrong.
//
// The Data field is not included in the formatted message; callers can log
// it separately when appropriate.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxenigma: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxenigma: cannot unmarshal " + e.Type + ": " + e.Reason
}

// Is reports that an UnmarshalError is a configuration failure.
func (e *UnmarshalError) Is(target error) bool {
	return target == ErrConfiguration
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "RotorDecl"), Field optionally identifies which field failed validation,
// Reason provides a human-readable explanation, and Value optionally contains
// the problematic value.
//
// # Example
//
//	func (d RotorDecl) Validate() error {
//	    if d.Name == "" {
//	        return &errors.ValidationError{
//	            Type:   "RotorDecl",
//	            Field:  "Name",
//	            Reason: "must not be empty",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxenigma: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxenigma: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxenigma: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxenigma: invalid " + e.Type + ": " + e.Reason
}

// Is reports that a ValidationError is a configuration failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ConfigurationError is returned when a machine component is built or set up
// from data that cannot describe a working machine.
//
// Component names the part being configured ("Alphabet", "Permutation",
// "Rotor", "Machine", "Settings", ...). Reason describes the problem. Value
// optionally carries the offending input, and Err optionally carries an
// underlying cause that is exposed through Unwrap.
//
// # Example
//
//	return &errors.ConfigurationError{
//	    Component: "Machine",
//	    Reason:    "unknown rotor name",
//	    Value:     "IX",
//	}
type ConfigurationError struct {
	// Component is the logical name of the component being configured.
	Component string

	// Reason is a short, human-readable explanation of the problem.
	Reason string

	// Value optionally contains the rejected input.
	Value any

	// Err optionally contains the underlying cause.
	Err error
}

// Error implements the error interface for ConfigurationError.
//
// The error message format is:
//
//	"dxenigma: bad {Component} configuration: {Reason}"
//	"dxenigma: bad {Component} configuration: {Reason}: {Err}" (when Err is set)
func (e *ConfigurationError) Error() string {
	msg := "dxenigma: bad " + e.Component + " configuration: " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is reports that a ConfigurationError is a configuration failure.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// OperationError is returned when a configured component is asked to perform
// an action it cannot perform.
//
// Component names the part that refused ("Rotor III", "Reflector B",
// "Machine"), Op names the refused action ("advance", "set",
// "convert backward", "convert"), and Reason explains why.
type OperationError struct {
	// Component identifies the refusing component.
	Component string

	// Op is the name of the refused operation.
	Op string

	// Reason is a short, human-readable explanation.
	Reason string
}

// Error implements the error interface for OperationError.
//
// The error message format is:
//
//	"dxenigma: {Component} cannot {Op}: {Reason}"
func (e *OperationError) Error() string {
	return "dxenigma: " + e.Component + " cannot " + e.Op + ": " + e.Reason
}

// Is reports that an OperationError is an operation failure.
func (e *OperationError) Is(target error) bool {
	return target == ErrOperation
}
