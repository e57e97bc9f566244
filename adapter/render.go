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
	"strings"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/code"
	"dirpx.dev/dresult/result"
)

// errorJoin separates individual errors in Error.
const errorJoin = "; "

// Error renders every error of o as one string: the opaque error strings
// first, then each validation error as "<identifier>.<code>¬<message>",
// joined by "; ". A success renders as the empty string.
func Error(o result.Outcome) string {
	errs := o.Errors()
	verrs := o.ValidationErrors()
	parts := make([]string, 0, len(errs)+len(verrs))
	parts = append(parts, errs...)
	for _, v := range verrs {
		parts = append(parts, code.Join(v.Identifier, v.ErrorCode)+dresult.Separator+v.ErrorMessage)
	}
	return strings.Join(parts, errorJoin)
}

// Snapshot renders o for diagnostics: "SUCCESS: <message>" for successes and
// "<Status>: <errors>" otherwise. The output is not meant to be parsed.
func Snapshot(o result.Outcome) string {
	if o.IsSuccess() {
		return "SUCCESS: " + o.SuccessMessage()
	}
	return o.Status().String() + ": " + Error(o)
}

// ErrorCode returns the code of the error derived from o by dresult.FromResult.
func ErrorCode(o result.Outcome) (string, error) {
	e, err := dresult.FromResult(o)
	if err != nil {
		return "", err
	}
	return e.Code, nil
}

// ErrorMessage returns the description of the error derived from o by
// dresult.FromResult.
func ErrorMessage(o result.Outcome) (string, error) {
	e, err := dresult.FromResult(o)
	if err != nil {
		return "", err
	}
	return e.Description, nil
}

// IsFailure reports whether o is anything but a success.
func IsFailure(o result.Outcome) bool {
	return !o.IsSuccess()
}
