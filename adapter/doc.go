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

// Package adapter holds the stateless functions that reshape, combine and
// describe results.
//
// Every function here is a pure transformation of its arguments. Functions
// that accept a result.Outcome work for both result.Result and
// result.Typed[T]. Conditions that cannot be handled are reported with the
// sentinel errors of package dresult (ErrInvalidState, ErrInvalidOperation,
// ErrInvalidFormat, ErrUnrecognizedStatus); none of them is ever replaced
// by a best-guess value.
package adapter
