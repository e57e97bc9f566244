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

// Severity grades a single validation error.
type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
	SeverityInfo    Severity = "Info"
)

// ValidationError is one structured failure carried by an Invalid result.
//
// Identifier names the thing that failed (an entity or a field), ErrorCode
// refines it, ErrorMessage is meant for humans.
type ValidationError struct {
	Identifier   string   `json:"identifier" yaml:"identifier"`
	ErrorCode    string   `json:"errorCode" yaml:"errorCode"`
	ErrorMessage string   `json:"errorMessage" yaml:"errorMessage"`
	Severity     Severity `json:"severity" yaml:"severity"`
}
