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

package dresult

import (
	"fmt"
	"strings"

	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/result"
)

// Separator joins Code and Description when an Error is flattened into a
// single opaque error string. It must not appear in either field.
const Separator = "¬"

// Error is the canonical domain error: a dotted code and a human-readable
// description.
//
// Error is a comparable value type. Construction performs no validation, so
// partially filled values can be carried around; the conversion that needs a
// particular shape is the one that checks it.
type Error struct {
	// Code is "<identifier>.<sub-code>", e.g. "Order.NotFound".
	Code string

	// Description is free text for humans.
	Description string
}

// None is the absence of an error. It is rejected by every To*Result method.
var None = Error{}

// New returns an Error with the given code and description.
func New(code, description string) Error {
	return Error{Code: code, Description: description}
}

// IsNone reports whether e equals None.
func (e Error) IsNone() bool { return e == None }

// WithCode returns a copy of e with Code replaced.
func (e Error) WithCode(c string) Error {
	e.Code = c
	return e
}

// WithDescription returns a copy of e with Description replaced.
func (e Error) WithDescription(d string) Error {
	e.Description = d
	return e
}

// Validate reports whether e survives every conversion in this package
// unchanged: the code must be a strict two-segment code and neither field
// may contain Separator.
func (e Error) Validate() error {
	if e.IsNone() {
		return fmt.Errorf("%w: error is None", ErrInvalidState)
	}
	if strings.Contains(e.Code, Separator) || strings.Contains(e.Description, Separator) {
		return fmt.Errorf("%w: separator %q inside error fields", ErrInvalidFormat, Separator)
	}
	if err := code.Validate(code.Code(e.Code)); err != nil {
		return fmt.Errorf("%w: code %q: %w", ErrInvalidFormat, e.Code, err)
	}
	return nil
}

// Error implements the error interface.
//
// The format is "<code>: <description>", or "<none>" for None.
func (e Error) Error() string {
	if e.IsNone() {
		return "<none>"
	}
	return e.Code + ": " + e.Description
}

// String returns the flattened "<code>¬<description>" form.
func (e Error) String() string {
	return e.Code + Separator + e.Description
}

// ToErrorResult converts e into an Error result.
func (e Error) ToErrorResult() (result.Result, error) {
	return e.toFailure(result.Error)
}

// ToForbiddenResult converts e into a Forbidden result.
func (e Error) ToForbiddenResult() (result.Result, error) {
	return e.toFailure(result.Forbidden)
}

// ToUnauthorizedResult converts e into an Unauthorized result.
func (e Error) ToUnauthorizedResult() (result.Result, error) {
	return e.toFailure(result.Unauthorized)
}

// ToNotFoundResult converts e into a NotFound result.
func (e Error) ToNotFoundResult() (result.Result, error) {
	return e.toFailure(result.NotFound)
}

// ToConflictResult converts e into a Conflict result.
func (e Error) ToConflictResult() (result.Result, error) {
	return e.toFailure(result.Conflict)
}

// ToServiceUnavailableResult converts e into an Unavailable result.
func (e Error) ToServiceUnavailableResult() (result.Result, error) {
	return e.toFailure(result.Unavailable)
}

// ToCriticalErrorResult converts e into a CriticalError result.
func (e Error) ToCriticalErrorResult() (result.Result, error) {
	return e.toFailure(result.CriticalError)
}

// ToInvalidResult converts e into an Invalid result holding one validation
// error with severity result.SeverityError.
//
// The code is split on '.': the first part becomes the identifier and the
// second the error code. Further parts are ignored. A code without two
// non-empty leading parts is rejected with ErrInvalidState.
func (e Error) ToInvalidResult() (result.Result, error) {
	if e.IsNone() {
		return result.Result{}, fmt.Errorf("%w: cannot convert None into an invalid result", ErrInvalidState)
	}
	id, sub, err := code.Split(e.Code)
	if err != nil {
		return result.Result{}, fmt.Errorf("%w: code %q: %w", ErrInvalidState, e.Code, err)
	}
	return result.Invalid(result.ValidationError{
		Identifier:   id,
		ErrorCode:    sub,
		ErrorMessage: e.Description,
		Severity:     result.SeverityError,
	}), nil
}

func (e Error) toFailure(build func(...string) result.Result) (result.Result, error) {
	if e.IsNone() {
		return result.Result{}, fmt.Errorf("%w: cannot convert None into a result", ErrInvalidState)
	}
	return build(e.String()), nil
}

// FromResult derives an Error from a failed result.
//
// Only the first error is used. For Invalid results it is the first
// validation error (code "<identifier>.<error code>", description the
// message); for every other failure it is the first opaque string, which
// must split on Separator into exactly two parts.
func FromResult(o result.Outcome) (Error, error) {
	st := o.Status()
	switch {
	case st.IsSuccess():
		return None, fmt.Errorf("%w: cannot convert successful result to error", ErrInvalidOperation)
	case st == result.StatusInvalid:
		verrs := o.ValidationErrors()
		if len(verrs) == 0 {
			return None, fmt.Errorf("%w: invalid result without validation errors", ErrInvalidFormat)
		}
		first := verrs[0]
		return Error{
			Code:        code.Join(first.Identifier, first.ErrorCode),
			Description: first.ErrorMessage,
		}, nil
	default:
		errs := o.Errors()
		if len(errs) == 0 {
			return None, fmt.Errorf("%w: %s result without errors", ErrInvalidFormat, st)
		}
		parts := strings.Split(errs[0], Separator)
		if len(parts) != 2 {
			return None, fmt.Errorf("%w: error string %q not in \"<code>%s<description>\" form", ErrInvalidFormat, errs[0], Separator)
		}
		return Error{Code: parts[0], Description: parts[1]}, nil
	}
}
