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
	"fmt"
	"strings"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper/internal/segmenttrie"
	"dirpx.dev/dresult/result"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The builder is seeded with the library defaults, the options are applied
// in order, prefix rules are validated and compiled into per-status tries,
// and everything is copied into the returned mapper. Errors report invalid
// prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTrie, err := buildTries("HTTP", b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries("gRPC", b.grpcPrefixes, codesOf)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper combines per-status defaults, per-status overrides and per-status
// code-prefix tries. It is read-only after New and safe for concurrent use.
type mapper struct {
	httpDefault  map[result.Status]int
	grpcDefault  map[result.Status]codes.Code
	httpOverride map[result.Status]int
	grpcOverride map[result.Status]codes.Code
	httpTrie     map[result.Status]*segmenttrie.Trie[int]
	grpcTrie     map[result.Status]*segmenttrie.Trie[codes.Code]

	// fallbackHTTP and fallbackGRPC apply to statuses with no rule at all,
	// which in practice means statuses outside the known set.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given result status and domain
// error code.
//
// Resolution order (highest to lowest):
//  1. per-status override;
//  2. per-status longest-prefix-match rule on the code;
//  3. per-status default;
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(st result.Status, errorCode string) int {
	v, _ := m.resolveHTTP(st, errorCode)
	return v
}

// GRPCStatus resolves a gRPC status with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(st result.Status, errorCode string) codes.Code {
	v, _ := m.resolveGRPC(st, errorCode)
	return v
}

// Status resolves both HTTP and gRPC from the same inputs.
func (m *mapper) Status(st result.Status, errorCode string) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(st, errorCode),
		GRPC: m.GRPCStatus(st, errorCode),
	}
}

// Explain produces a textual trace of how the statuses for (st, errorCode)
// were resolved:
//
//	status="NotFound" code="Order.Missing"
//	http: source=prefix pattern="Order" -> 410
//	grpc: source=default -> NotFound(5)
//
// source is one of override, prefix, default or fallback.
func (m *mapper) Explain(st result.Status, errorCode string) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%q code=%q\n", st.String(), errorCode)

	hv, hs := m.resolveHTTP(st, errorCode)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", hs, hv)

	gv, gs := m.resolveGRPC(st, errorCode)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", gs, gv.String(), uint32(gv))

	return b.String()
}

// resolveHTTP returns the HTTP status and a description of its source.
func (m *mapper) resolveHTTP(st result.Status, errorCode string) (int, string) {
	if v, ok := m.httpOverride[st]; ok {
		return v, "source=override"
	}
	if t, ok := m.httpTrie[st]; ok && errorCode != "" {
		if v, ok, pat := t.MatchWithPattern(errorCode); ok {
			return v, fmt.Sprintf("source=prefix pattern=%q", pat)
		}
	}
	if v, ok := m.httpDefault[st]; ok {
		return v, "source=default"
	}
	return m.fallbackHTTP, "source=fallback"
}

// resolveGRPC returns the gRPC code and a description of its source.
func (m *mapper) resolveGRPC(st result.Status, errorCode string) (codes.Code, string) {
	if v, ok := m.grpcOverride[st]; ok {
		return v, "source=override"
	}
	if t, ok := m.grpcTrie[st]; ok && errorCode != "" {
		if v, ok, pat := t.MatchWithPattern(errorCode); ok {
			return v, fmt.Sprintf("source=prefix pattern=%q", pat)
		}
	}
	if v, ok := m.grpcDefault[st]; ok {
		return v, "source=default"
	}
	return m.fallbackGRPC, "source=fallback"
}

// StatusOf resolves the transport statuses of o with m.
//
// The domain error code used for prefix rules is derived with
// dresult.FromResult; when none can be derived (successes, foreign error
// strings) only status-level rules apply.
func StatusOf(m apis.Mapper, o result.Outcome) apis.Status {
	return m.Status(o.Status(), codeOf(o))
}

func codeOf(o result.Outcome) string {
	if o.IsSuccess() {
		return ""
	}
	e, err := dresult.FromResult(o)
	if err != nil {
		return ""
	}
	return e.Code
}
