/*
   Copyright 2025 The DIRPX Authors.

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

package registry

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/fixture/apis"
)

var (
	// ErrNilProducer is returned when a nil producer is registered.
	ErrNilProducer = errors.New("fixture(registry): nil producer provided")
)

// Registry is an ordered, copy-on-write collection of producers.
//
// Reads (Snapshot, Count, Select) are lock-free: they load the current
// immutable slice. Writes take a mutex, copy the slice, and publish the copy
// atomically. A build that has taken a snapshot is never affected by later
// registrations.
type Registry[T apis.Prioritized] struct {
	// mu serializes writers.
	mu sync.Mutex
	// items holds the published snapshot in registration order.
	items atomic.Pointer[[]T]
}

// New constructs a Registry pre-populated with items.
func New[T apis.Prioritized](items ...T) (*Registry[T], error) {
	r := &Registry[T]{}
	if err := r.Add(items...); err != nil {
		return nil, err
	}
	return r, nil
}

// Add appends items in order. Nothing is added when any item is nil.
func (r *Registry[T]) Add(items ...T) error {
	for _, it := range items {
		if isNil(it) {
			return ErrNilProducer
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.Snapshot()
	next := make([]T, 0, len(old)+len(items))
	next = append(next, old...)
	next = append(next, items...)
	r.items.Store(&next)
	return nil
}

// Remove drops every item for which match returns true and reports how many
// were removed.
func (r *Registry[T]) Remove(match func(T) bool) int {
	if match == nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.Snapshot()
	next := make([]T, 0, len(old))
	for _, it := range old {
		if !match(it) {
			next = append(next, it)
		}
	}
	r.items.Store(&next)
	return len(old) - len(next)
}

// Snapshot returns the items in registration order. The returned slice is
// shared and must not be modified.
func (r *Registry[T]) Snapshot() []T {
	if p := r.items.Load(); p != nil {
		return *p
	}
	return nil
}

// Count returns the number of registered items.
func (r *Registry[T]) Count() int {
	return len(r.Snapshot())
}

// Reset clears all registered items.
func (r *Registry[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items.Store(nil)
}

// Select returns the matching item with the highest priority. When
// priorities tie, the item that comes first in items wins, so selection is
// deterministic for an unchanged registry.
func Select[T apis.Prioritized](items []T, match func(T) bool) (T, bool) {
	var (
		best  T
		found bool
	)
	for _, it := range items {
		if isNil(it) || !match(it) {
			continue
		}
		if !found || it.Priority() > best.Priority() {
			best, found = it, true
		}
	}
	return best, found
}

// isNil reports whether item holds nothing, including typed nil pointers.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
