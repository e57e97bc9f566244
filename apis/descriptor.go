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

// ErrorDescriptor is a flat description of a failed result together with its
// resolved transport statuses and severity.
//
// It is intended for structured logging, tracing, or message bus
// propagation. Fields are plain strings and ints so that the type can be
// emitted by any encoder.
type ErrorDescriptor struct {
	// Status is the result status name.
	Status string `json:"status"`

	// Code is the domain error code of the first error, if derivable.
	Code string `json:"code,omitempty"`

	// Description is the description of the first error, if derivable.
	Description string `json:"description,omitempty"`

	// Level is the operational severity ("INFO", "WARN", "ERROR").
	Level string `json:"level,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`
}
