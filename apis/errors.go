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

package apis

import "dirpx.dev/dresult/result"

// OutcomeError is an error that carries a failed result.
//
// Business code that works with results can hand one to an error-returning
// API (a gRPC handler, an errgroup) and the transport edge can recover the
// result intact with errors.As.
type OutcomeError interface {
	error

	// Outcome returns the carried result. It is never a success.
	Outcome() result.Outcome
}
