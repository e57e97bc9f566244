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

// Package result defines the outcome model shared by every other package in
// this module: a closed set of statuses, an untyped Result and a payload
// carrying Typed[T].
//
// Results are immutable values. Factories copy the slices they are given and
// accessors return copies, so a Result can be shared freely between
// goroutines.
//
//	r := result.NotFound("Order.Missing¬order 42 does not exist")
//	r.Status()   // result.StatusNotFound
//	r.Errors()   // ["Order.Missing¬order 42 does not exist"]
//
//	v := result.Value(order)
//	v.IsSuccess() // true
//	v.Value()     // order
//
// Code that only inspects outcomes should accept the Outcome interface,
// which both shapes implement.
package result
