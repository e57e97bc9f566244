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
	"errors"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/result"
)

// outcomeError carries a failed result through error-returning APIs.
type outcomeError struct {
	o result.Outcome
}

var _ apis.OutcomeError = (*outcomeError)(nil)

// Error returns the snapshot of the carried result.
func (e *outcomeError) Error() string { return Snapshot(e.o) }

// Outcome returns the carried result.
func (e *outcomeError) Outcome() result.Outcome { return e.o }

// AsError wraps a failed result into an error implementing
// apis.OutcomeError. Successes yield nil.
func AsError(o result.Outcome) error {
	if o == nil || o.IsSuccess() {
		return nil
	}
	return &outcomeError{o: o}
}

// FromError returns the result carried by err or by anything it wraps.
func FromError(err error) (result.Outcome, bool) {
	var oe apis.OutcomeError
	if errors.As(err, &oe) {
		return oe.Outcome(), true
	}
	return nil, false
}
