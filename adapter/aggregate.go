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

// AppendValidationErrors folds one more validation outcome into agg.
//
// Rules:
//   - agg is neither Ok nor Invalid: ErrInvalidState, whatever next is;
//   - next is Ok: agg is returned unchanged;
//   - next is Invalid and agg is Ok: next becomes the aggregate;
//   - next is Invalid and agg is Invalid: the validation errors of agg are
//     followed by those of next, in order, without de-duplication;
//   - next has any other status: ErrInvalidState.
//
// Only Ok and Invalid take part. An aggregate that has committed to another
// failure category cannot absorb validation errors, and other failures must
// not be funneled through this function.
func AppendValidationErrors[T any](agg result.Result, next result.Typed[T]) (result.Result, error) {
	if st := agg.Status(); st != result.StatusOk && st != result.StatusInvalid {
		return result.Result{}, fmt.Errorf("%w: aggregated result has unexpected status %s", dresult.ErrInvalidState, st)
	}
	switch next.Status() {
	case result.StatusOk:
		return agg, nil
	case result.StatusInvalid:
		if agg.Status() == result.StatusOk {
			return ToResult(next)
		}
		merged := append(agg.ValidationErrors(), next.ValidationErrors()...)
		return result.Invalid(merged...), nil
	default:
		return result.Result{}, fmt.Errorf("%w: new result has unexpected status %s", dresult.ErrInvalidState, next.Status())
	}
}

// AggregateValidation folds results left to right with AppendValidationErrors,
// starting from result.Success. It stops at the first error.
func AggregateValidation[T any](results ...result.Typed[T]) (result.Result, error) {
	agg := result.Success()
	for i, r := range results {
		var err error
		if agg, err = AppendValidationErrors(agg, r); err != nil {
			return result.Result{}, fmt.Errorf("aggregate step %d: %w", i, err)
		}
	}
	return agg, nil
}
