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

// Package deck provides a dealable, reshufflable collection whose Deal
// reports exhaustion as a NotFound result instead of an error.
package deck

import (
	"math/rand/v2"
	"sync"

	"dirpx.dev/dresult/result"
)

// Deck holds a private copy of its items and a cursor that starts at the
// last item. Deal moves the cursor towards the front; Shuffle resets it.
//
// A Deck is safe for concurrent use.
type Deck[T any] struct {
	mu    sync.Mutex
	items []T
	next  int // index of the next item to deal, -1 when exhausted
	rnd   *rand.Rand
}

// Option configures a Deck.
type Option func(*config)

type config struct {
	rnd *rand.Rand
}

// WithRand makes Shuffle draw from r instead of the global source.
// Useful for reproducible orders in tests.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rnd = r }
}

// New creates a deck primed with a copy of items.
func New[T any](items []T, opts ...Option) *Deck[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return &Deck[T]{items: cp, next: len(cp) - 1, rnd: c.rnd}
}

// Deal returns the item under the cursor and advances it.
// Once every item has been dealt it returns a NotFound result.
func (d *Deck[T]) Deal() result.Typed[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.next < 0 {
		return result.Lift[T](result.NotFound())
	}
	item := d.items[d.next]
	d.next--
	return result.Value(item)
}

// Shuffle reorders all items (Fisher-Yates) and resets the cursor, so
// previously dealt items become available again.
func (d *Deck[T]) Shuffle() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := len(d.items) - 1; i > 0; i-- {
		j := d.intN(i + 1)
		d.items[i], d.items[j] = d.items[j], d.items[i]
	}
	d.next = len(d.items) - 1
}

// Remaining reports how many items can still be dealt.
func (d *Deck[T]) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.next + 1
}

// Len reports the total number of items in the deck.
func (d *Deck[T]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

func (d *Deck[T]) intN(n int) int {
	if d.rnd != nil {
		return d.rnd.IntN(n)
	}
	return rand.IntN(n)
}
