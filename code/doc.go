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

// Package code provides parsing, splitting and validation of domain error codes.
//
// A domain error code is a dotted pair:
//
//	<identifier>.<sub-code>
//
// such as "Order.NotFound" or "Customer.EmailTaken". The identifier names the
// entity or field the error is about; the sub-code refines it. When an error
// is expressed as a structured validation error the two halves travel in
// separate fields, so every code that may end up there must split cleanly.
//
// Two levels of strictness are offered:
//
//   - Split is lenient: it splits on '.', requires two non-empty leading
//     parts and ignores anything after the second part;
//   - Parse and Validate are strict: exactly two segments, each made of
//     letters, digits, '_' or '-'.
//
// Codes are case-sensitive and are never normalized.
package code
