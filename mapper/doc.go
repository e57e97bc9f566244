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

// Package mapper provides deterministic, immutable mappings from result
// statuses (dirpx.dev/dresult/result) and optional domain error codes to
// transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A failed result is described by two things:
//
//  1. its Status (e.g. result.StatusNotFound, result.StatusInvalid),
//  2. the domain error code of its first error (e.g. "Order.NotFound").
//
// Transport layers need to turn this pair into concrete status codes.
// Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change defaults per Status;
//   - prefix-aware: callers can add rules for specific code prefixes;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. override for the Status;
//  2. per-Status longest-prefix-match on the domain code;
//  3. per-Status default (library or user-adjusted);
//  4. fallback (500 / codes.Internal unless configured).
//
// Prefix rules are segment-aware: codes are "."-separated and "*" matches
// exactly one segment:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(result.StatusNotFound, "Order", http.StatusGone),
//	    mapper.WithHTTPPrefix(result.StatusConflict, "*.Version", http.StatusPreconditionFailed),
//	)
//
//	st := m.Status(result.StatusNotFound, "Order.Archived")
//	// st.HTTP == 410, st.GRPC == codes.NotFound
//
// StatusOf derives the code from a result directly.
//
// # Configuration files
//
// Rules can also be kept in YAML and turned into options with ParseRules /
// LoadYAML; see Rules for the document shape.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (status, code) pair
// was resolved. It is meant for inspection and logging, not for parsing.
package mapper
