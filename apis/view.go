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

// ErrorView is a minimal, serializable representation of a failed result.
//
// This is the shape we are comfortable exposing over the wire or logging.
// Keeping it here lets HTTP and gRPC adapters share the same struct.
type ErrorView struct {
	// Status is the result status name, e.g. "NotFound".
	Status string `json:"status"`

	// Code is the domain error code of the first error, when it could be
	// derived, e.g. "Order.NotFound".
	Code string `json:"code,omitempty"`

	// Message is the description of the first error.
	Message string `json:"message,omitempty"`

	// Errors lists every opaque error string, in order.
	Errors []string `json:"errors,omitempty"`

	// Details lists every validation error, in order.
	Details []Detail `json:"details,omitempty"`
}
