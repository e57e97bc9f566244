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

package mapper

import (
	"net/http"

	"dirpx.dev/dresult/result"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the built-in HTTP mapping for every result status.
// Callers adjust it at the boundary where HTTP is produced.
var defaultHTTP = map[result.Status]int{
	result.StatusOk:        http.StatusOK,
	result.StatusCreated:   http.StatusCreated,
	result.StatusNoContent: http.StatusNoContent,

	result.StatusInvalid:      http.StatusBadRequest,
	result.StatusUnauthorized: http.StatusUnauthorized,
	result.StatusForbidden:    http.StatusForbidden,
	result.StatusNotFound:     http.StatusNotFound,
	result.StatusConflict:     http.StatusConflict,
	// A generic business failure: the request was understood but could not
	// be processed.
	result.StatusError: http.StatusUnprocessableEntity,

	result.StatusCriticalError: http.StatusInternalServerError,
	result.StatusUnavailable:   http.StatusServiceUnavailable,
}

// defaultGRPC defines the built-in gRPC mapping for every result status.
var defaultGRPC = map[result.Status]codes.Code{
	result.StatusOk:        codes.OK,
	result.StatusCreated:   codes.OK,
	result.StatusNoContent: codes.OK,

	result.StatusInvalid:      codes.InvalidArgument,
	result.StatusUnauthorized: codes.Unauthenticated,
	result.StatusForbidden:    codes.PermissionDenied,
	result.StatusNotFound:     codes.NotFound,
	result.StatusConflict:     codes.Aborted, // concurrent update or state clash
	result.StatusError:        codes.Unknown,

	result.StatusCriticalError: codes.Internal,
	result.StatusUnavailable:   codes.Unavailable,
}

// DefaultHTTP returns the built-in HTTP status for st and whether one exists.
func DefaultHTTP(st result.Status) (int, bool) {
	v, ok := defaultHTTP[st]
	return v, ok
}

// DefaultGRPC returns the built-in gRPC code for st and whether one exists.
func DefaultGRPC(st result.Status) (codes.Code, bool) {
	v, ok := defaultGRPC[st]
	return v, ok
}
