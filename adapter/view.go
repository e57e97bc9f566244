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
	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/result"
)

// ToView converts a failed result into a public ErrorView. Successes yield
// the zero view.
//
// The view exposes exactly what the result contains; no redaction or
// filtering is applied. Code and Message are filled only when an error can
// be derived with dresult.FromResult.
func ToView(o result.Outcome) apis.ErrorView {
	if o == nil || o.IsSuccess() {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Status: o.Status().String(),
		Errors: o.Errors(),
	}
	if e, err := dresult.FromResult(o); err == nil {
		v.Code = e.Code
		v.Message = e.Description
	}
	for _, ve := range o.ValidationErrors() {
		v.Details = append(v.Details, apis.Detail{
			Identifier: ve.Identifier,
			Code:       ve.ErrorCode,
			Message:    ve.ErrorMessage,
			Severity:   string(ve.Severity),
		})
	}
	return v
}

// ToDescriptor converts a result together with its resolved transport status
// into a portable ErrorDescriptor.
//
// The level is left empty when the status is not recognized.
func ToDescriptor(o result.Outcome, st apis.Status) apis.ErrorDescriptor {
	if o == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Status:     o.Status().String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	if lvl, err := LogLevel(o); err == nil {
		d.Level = lvl.String()
	}
	if e, err := dresult.FromResult(o); err == nil {
		d.Code = e.Code
		d.Description = e.Description
	}
	return d
}
