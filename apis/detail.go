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

// Detail is the view of a single validation error.
//
// It mirrors result.ValidationError with JSON-friendly tags so that
// validation failures can be exposed without leaking the result package into
// API schemas.
type Detail struct {
	// Identifier names the entity or field that failed, e.g. "Order" or
	// "email".
	Identifier string `json:"identifier"`

	// Code refines the identifier, e.g. "NotFound" or "Required".
	Code string `json:"code"`

	// Message is a human-readable explanation.
	Message string `json:"message,omitempty"`

	// Severity is the validation severity ("Error", "Warning", "Info").
	Severity string `json:"severity,omitempty"`
}
