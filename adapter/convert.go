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

package adapter

import (
	"fmt"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/result"
)

// ToResult drops the payload of a typed result.
//
// Success statuses keep their status and success message. Failures keep
// their status and their error payload verbatim. A status outside the known
// set yields ErrUnrecognizedStatus.
func ToResult[T any](r result.Typed[T]) (result.Result, error) {
	switch st := r.Status(); st {
	case result.StatusOk:
		return result.SuccessWithMessage(r.SuccessMessage()), nil
	case result.StatusCreated:
		return result.Created(r.SuccessMessage()), nil
	case result.StatusNoContent:
		return result.Of(result.StatusNoContent, r.SuccessMessage(), nil, nil), nil
	default:
		return refail(r)
	}
}

// Convert re-types a failed result.
//
// There is no safe way to turn a payload of type S into one of type T, so
// success statuses are rejected with ErrInvalidOperation. Failures keep their
// status and error payload verbatim.
func Convert[S, T any](r result.Typed[S]) (result.Typed[T], error) {
	if r.Status().IsSuccess() {
		return result.Typed[T]{}, fmt.Errorf("%w: cannot convert successful typed result to a different typed result", dresult.ErrInvalidOperation)
	}
	out, err := refail(r)
	if err != nil {
		return result.Typed[T]{}, err
	}
	return result.Lift[T](out), nil
}

// refail rebuilds a failed outcome as an untyped result of the same status.
func refail(o result.Outcome) (result.Result, error) {
	switch st := o.Status(); st {
	case result.StatusInvalid:
		return result.Invalid(o.ValidationErrors()...), nil
	case result.StatusUnauthorized:
		return result.Unauthorized(o.Errors()...), nil
	case result.StatusForbidden:
		return result.Forbidden(o.Errors()...), nil
	case result.StatusNotFound:
		return result.NotFound(o.Errors()...), nil
	case result.StatusConflict:
		return result.Conflict(o.Errors()...), nil
	case result.StatusError:
		return result.Error(o.Errors()...), nil
	case result.StatusCriticalError:
		return result.CriticalError(o.Errors()...), nil
	case result.StatusUnavailable:
		return result.Unavailable(o.Errors()...), nil
	default:
		return result.Result{}, fmt.Errorf("%w: %s", dresult.ErrUnrecognizedStatus, st)
	}
}
