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

// Package dresult maps a compact domain error onto the failure encodings of
// result.Result and back.
//
// A domain error is a (code, description) pair where the code has the form
// "<identifier>.<sub-code>". It can be turned into a failing result of any
// category:
//
//	e := dresult.New("Order.NotFound", "No such order")
//	r, err := e.ToNotFoundResult()   // opaque string "Order.NotFound¬No such order"
//	r, err = e.ToInvalidResult()     // ValidationError{Identifier: "Order", ErrorCode: "NotFound", ...}
//
// and recovered from one:
//
//	back, err := dresult.FromResult(r) // back == e
//
// Opaque categories flatten the pair with Separator; the Invalid category
// splits the code into the identifier and sub-code of a structured
// validation error. For well-formed errors the two directions are exact
// inverses.
//
// Conversions that cannot be performed return one of the sentinel errors
// declared in this package. They signal programming or integration mistakes
// and are meant to be propagated, not recovered from.
package dresult
