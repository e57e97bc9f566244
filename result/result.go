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

package result

// Outcome is the read-only view shared by Result and Typed.
//
// Code that only inspects an outcome (rendering, logging, transport
// projection) should accept an Outcome so that it works for both shapes.
type Outcome interface {
	Status() Status
	IsSuccess() bool
	SuccessMessage() string
	Errors() []string
	ValidationErrors() []ValidationError
}

// state holds the fields common to both result shapes. It is never
// modified after construction; accessors hand out copies.
type state struct {
	status     Status
	message    string
	errors     []string
	validation []ValidationError
}

// Status returns the outcome category.
func (s state) Status() Status { return s.status }

// IsSuccess reports whether the status is one of the success statuses.
func (s state) IsSuccess() bool { return s.status.IsSuccess() }

// SuccessMessage returns the optional success message.
func (s state) SuccessMessage() string { return s.message }

// Errors returns a copy of the opaque error strings, in order.
func (s state) Errors() []string {
	if len(s.errors) == 0 {
		return nil
	}
	out := make([]string, len(s.errors))
	copy(out, s.errors)
	return out
}

// ValidationErrors returns a copy of the structured validation errors, in order.
func (s state) ValidationErrors() []ValidationError {
	if len(s.validation) == 0 {
		return nil
	}
	out := make([]ValidationError, len(s.validation))
	copy(out, s.validation)
	return out
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneValidation(in []ValidationError) []ValidationError {
	if len(in) == 0 {
		return nil
	}
	out := make([]ValidationError, len(in))
	copy(out, in)
	return out
}

// Result is an outcome without a payload.
type Result struct {
	state
}

// Of builds a Result with an arbitrary status.
//
// It performs no checks and exists for decoders and adapters that have to
// reconstruct a result from an external representation. Prefer the
// per-status factories everywhere else.
func Of(st Status, message string, errs []string, verrs []ValidationError) Result {
	return Result{state{
		status:     st,
		message:    message,
		errors:     cloneStrings(errs),
		validation: cloneValidation(verrs),
	}}
}

// Success returns an Ok result.
func Success() Result { return Result{state{status: StatusOk}} }

// SuccessWithMessage returns an Ok result carrying msg.
func SuccessWithMessage(msg string) Result {
	return Result{state{status: StatusOk, message: msg}}
}

// Created returns a Created result carrying msg (which may be empty).
func Created(msg string) Result {
	return Result{state{status: StatusCreated, message: msg}}
}

// NoContent returns a NoContent result.
func NoContent() Result { return Result{state{status: StatusNoContent}} }

// Error returns an Error result.
func Error(errs ...string) Result { return failure(StatusError, errs) }

// Forbidden returns a Forbidden result.
func Forbidden(errs ...string) Result { return failure(StatusForbidden, errs) }

// Unauthorized returns an Unauthorized result.
func Unauthorized(errs ...string) Result { return failure(StatusUnauthorized, errs) }

// NotFound returns a NotFound result.
func NotFound(errs ...string) Result { return failure(StatusNotFound, errs) }

// Conflict returns a Conflict result.
func Conflict(errs ...string) Result { return failure(StatusConflict, errs) }

// CriticalError returns a CriticalError result.
func CriticalError(errs ...string) Result { return failure(StatusCriticalError, errs) }

// Unavailable returns an Unavailable result.
func Unavailable(errs ...string) Result { return failure(StatusUnavailable, errs) }

// Invalid returns an Invalid result carrying verrs.
func Invalid(verrs ...ValidationError) Result {
	return Result{state{status: StatusInvalid, validation: cloneValidation(verrs)}}
}

func failure(st Status, errs []string) Result {
	return Result{state{status: st, errors: cloneStrings(errs)}}
}

// Typed is an outcome that carries a payload of type T on success.
type Typed[T any] struct {
	state
	value T
}

// Value returns the payload. It is the zero value for failures.
func (t Typed[T]) Value() T { return t.value }

// Value returns a typed Ok result carrying v.
func Value[T any](v T) Typed[T] {
	return Typed[T]{state: state{status: StatusOk}, value: v}
}

// ValueWithMessage returns a typed Ok result carrying v and msg.
func ValueWithMessage[T any](v T, msg string) Typed[T] {
	return Typed[T]{state: state{status: StatusOk, message: msg}, value: v}
}

// CreatedValue returns a typed Created result.
func CreatedValue[T any](v T, msg string) Typed[T] {
	return Typed[T]{state: state{status: StatusCreated, message: msg}, value: v}
}

// Lift re-types an untyped result. The payload is the zero value of T.
//
// Every field of r is carried over unchanged, including its status, so
// Lift is only lossless for failures and payload-less successes.
func Lift[T any](r Result) Typed[T] {
	return Typed[T]{state: state{
		status:     r.status,
		message:    r.message,
		errors:     cloneStrings(r.errors),
		validation: cloneValidation(r.validation),
	}}
}
