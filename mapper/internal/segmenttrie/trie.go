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

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys such as domain
// error codes ("Order.NotFound"). Each node is one segment; the wildcard "*"
// matches exactly one segment. Lookups return the deepest matching prefix,
// so a more specific rule wins over a shorter one.
//
// A Trie is not safe for concurrent Insert. Once built it is read-only and
// may be shared.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for Explain-style diagnostics.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, contains invalid characters, or consists only of
	// wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix, e.g. "Order",
// "Order.NotFound" or "*.NotFound". Re-inserting a prefix replaces its value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !ValidSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix of key present in the trie.
// Exact segments and wildcards are both explored. Keys with empty or invalid
// segments stop matching at that segment.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the prefix that matched, as it
// was inserted.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := matchState[T]{depth: -1}
	t.walk(key, 0, &best)
	if best.depth < 0 {
		return zero, false, ""
	}
	return best.node.val, true, best.node.pattern
}

type matchState[T any] struct {
	depth int
	node  *Trie[T]
}

// walk visits t with depth segments consumed and rest still to match.
func (t *Trie[T]) walk(rest string, depth int, best *matchState[T]) {
	if t.hasVal && depth > best.depth {
		best.depth = depth
		best.node = t
	}
	if rest == "" {
		return
	}
	seg, tail, _ := strings.Cut(rest, ".")
	if !ValidSegment(seg) {
		return
	}
	if next, ok := t.children[seg]; ok {
		next.walk(tail, depth+1, best)
	}
	if next, ok := t.children[Wildcard]; ok {
		next.walk(tail, depth+1, best)
	}
}

// ValidSegment reports whether seg is a non-wildcard segment: one or more
// ASCII letters, digits, '_' or '-'.
func ValidSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
