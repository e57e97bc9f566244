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
	"log/slog"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/result"
)

// LogLevel maps the status of o to the level it should be logged at.
//
//	Ok, Created, NoContent                                 -> slog.LevelInfo
//	Invalid, Unauthorized, Forbidden, NotFound, Conflict,
//	Error                                                  -> slog.LevelWarn
//	CriticalError, Unavailable                             -> slog.LevelError
//
// Any other status yields ErrUnrecognizedStatus.
func LogLevel(o result.Outcome) (slog.Level, error) {
	switch st := o.Status(); st {
	case result.StatusOk, result.StatusCreated, result.StatusNoContent:
		return slog.LevelInfo, nil
	case result.StatusInvalid, result.StatusUnauthorized, result.StatusForbidden,
		result.StatusNotFound, result.StatusConflict, result.StatusError:
		return slog.LevelWarn, nil
	case result.StatusCriticalError, result.StatusUnavailable:
		return slog.LevelError, nil
	default:
		return slog.LevelError, fmt.Errorf("%w: %s", dresult.ErrUnrecognizedStatus, st)
	}
}
