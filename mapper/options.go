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

package mapper

import (
	"dirpx.dev/dresult/result"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for st.
func WithHTTPDefault(st result.Status, http int) Option {
	return func(b *builder) { b.httpDefaults[st] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for st.
func WithGRPCDefault(st result.Status, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[st] = grpc }
}

// WithHTTPOverride registers an HTTP status for st that wins over every
// other rule, including prefix rules.
func WithHTTPOverride(st result.Status, http int) Option {
	return func(b *builder) { b.httpOverride[st] = http }
}

// WithGRPCOverride registers a gRPC status for st that wins over every other
// rule, including prefix rules.
func WithGRPCOverride(st result.Status, grpc int) Option {
	return func(b *builder) { b.grpcOverride[st] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule for st. The rule is
// evaluated against the domain error code of the result, segment by segment.
// A more specific prefix wins. Use "*" to match a single segment.
//
//	WithHTTPPrefix(result.StatusNotFound, "Order", http.StatusGone)
func WithHTTPPrefix(st result.Status, prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes[st] = append(b.httpPrefixes[st], prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule for st.
func WithGRPCPrefix(st result.Status, prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes[st] = append(b.grpcPrefixes[st], prefixRule{prefix, grpc}) }
}

// WithFallback replaces the statuses used when st has no rule at all.
func WithFallback(http, grpc int) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = codesOf(grpc)
	}
}
