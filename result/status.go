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

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
)

// Status is the closed set of outcome categories a Result can carry.
//
// The zero value is StatusOk. Values outside the declared constants can be
// constructed (Status is an integer type) but are never produced by the
// factories in this package; consumers are expected to treat them as a
// hard failure rather than guess a category.
type Status int

const (
	// StatusOk is a plain success.
	StatusOk Status = iota
	// StatusCreated is a success that produced a new resource.
	StatusCreated
	// StatusNoContent is a success with nothing to return.
	StatusNoContent
	// StatusInvalid carries structured validation errors.
	StatusInvalid
	// StatusUnauthorized means the caller is not authenticated.
	StatusUnauthorized
	// StatusForbidden means the caller is authenticated but not allowed.
	StatusForbidden
	// StatusNotFound means the target does not exist.
	StatusNotFound
	// StatusConflict means the request clashes with current state.
	StatusConflict
	// StatusError is a generic, non-critical failure.
	StatusError
	// StatusCriticalError is a failure that needs operator attention.
	StatusCriticalError
	// StatusUnavailable means a dependency or the service itself is down.
	StatusUnavailable
)

// statusNames is indexed by Status. The order must follow the const block.
var statusNames = [...]string{
	StatusOk:            "Ok",
	StatusCreated:       "Created",
	StatusNoContent:     "NoContent",
	StatusInvalid:       "Invalid",
	StatusUnauthorized:  "Unauthorized",
	StatusForbidden:     "Forbidden",
	StatusNotFound:      "NotFound",
	StatusConflict:      "Conflict",
	StatusError:         "Error",
	StatusCriticalError: "CriticalError",
	StatusUnavailable:   "Unavailable",
}

var (
	// ErrStatusUnknown is returned when text does not name a known Status.
	ErrStatusUnknown = errors.New("result: unknown status")
)

var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// Statuses returns every known status in declaration order.
func Statuses() []Status {
	out := make([]Status, len(statusNames))
	for i := range statusNames {
		out[i] = Status(i)
	}
	return out
}

// Known reports whether s is one of the declared constants.
func (s Status) Known() bool {
	return s >= StatusOk && int(s) < len(statusNames)
}

// IsSuccess reports whether s is StatusOk, StatusCreated or StatusNoContent.
func (s Status) IsSuccess() bool {
	return s == StatusOk || s == StatusCreated || s == StatusNoContent
}

// String returns the status name, or "Status(n)" for unknown values.
func (s Status) String() string {
	if !s.Known() {
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
	return statusNames[s]
}

// ParseStatus returns the Status named by s. Matching is exact.
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return StatusOk, ErrStatusUnknown
}

// MarshalText implements encoding.TextMarshaler. Unknown statuses fail.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Known() {
		return nil, ErrStatusUnknown
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
