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

import "errors"

var (
	// ErrInvalidState is returned when the requested conversion is
	// structurally impossible for the given value, e.g. turning None into a
	// failing result or aggregating a non-validation failure.
	ErrInvalidState = errors.New("dresult: invalid state")

	// ErrInvalidOperation is returned when an operation is not defined for a
	// successful result, e.g. deriving an error from it.
	ErrInvalidOperation = errors.New("dresult: invalid operation")

	// ErrInvalidFormat is returned when an error string was not produced by
	// this package and cannot be split back into a code and a description.
	ErrInvalidFormat = errors.New("dresult: invalid format")

	// ErrUnrecognizedStatus is returned when a result carries a status
	// outside the closed set known to this package.
	ErrUnrecognizedStatus = errors.New("dresult: unrecognized status")
)
