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

	"dirpx.dev/dresult/mapper/internal/segmenttrie"
	"dirpx.dev/dresult/result"
	"google.golang.org/grpc/codes"
)

// freeze copies src so that the mapper does not observe later changes to the
// builder. Empty maps become nil.
func freeze[V any](src map[result.Status]V) map[result.Status]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[result.Status]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC copies src converting builder-style ints into gRPC codes.
func freezeGRPC(src map[result.Status]int) map[result.Status]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[result.Status]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codesOf(v)
	}
	return dst
}

func codesOf(v int) codes.Code {
	return codes.Code(uint32(v))
}

// buildTries compiles per-status prefix rules into tries, converting each
// rule value with conv.
func buildTries[V any](transport string, rules map[result.Status][]prefixRule, conv func(int) V) (map[result.Status]*segmenttrie.Trie[V], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[result.Status]*segmenttrie.Trie[V], len(rules))
	for st, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[V]()
		for _, r := range rs {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s code prefix %q for status %s: %w", transport, r.prefix, st, err)
			}
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for status %s: %w", transport, p, st, err)
			}
		}
		out[st] = t
	}
	return out, nil
}

// normalizeAndValidatePrefix trims a code prefix and checks every segment.
// A prefix must contain at least one concrete (non-"*") segment.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if seg == segmenttrie.Wildcard {
			continue
		}
		if !segmenttrie.ValidSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		allWild = false
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}
