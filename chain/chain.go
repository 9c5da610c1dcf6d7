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

// Package chain provides the build history stack used by a single
// top-level build.
package chain

import (
	"reflect"

	"dirpx.dev/fixture/apis"
)

// Chain is a slice-backed apis.BuildChain. The zero value is ready to use.
type Chain struct {
	items []any
}

// Ensure Chain implements apis.BuildChain.
var _ apis.BuildChain = (*Chain)(nil)

// New returns an empty chain.
func New() *Chain {
	return &Chain{}
}

// Push adds instance on top of the chain.
func (c *Chain) Push(instance any) {
	c.items = append(c.items, instance)
}

// Pop removes and returns the top instance, or nil when empty.
func (c *Chain) Pop() any {
	n := len(c.items)
	if n == 0 {
		return nil
	}
	top := c.items[n-1]
	c.items[n-1] = nil
	c.items = c.items[:n-1]
	return top
}

// Last returns the top instance, or nil when empty.
func (c *Chain) Last() any {
	if len(c.items) == 0 {
		return nil
	}
	return c.items[len(c.items)-1]
}

// First returns the root instance, or nil when empty.
func (c *Chain) First() any {
	if len(c.items) == 0 {
		return nil
	}
	return c.items[0]
}

// Count returns the number of instances in the chain.
func (c *Chain) Count() int {
	return len(c.items)
}

// Items returns a copy of the chain, root first.
func (c *Chain) Items() []any {
	out := make([]any, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the most recent instance whose runtime type is exactly t.
// Supertypes and interfaces never match.
func (c *Chain) Find(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}
	for i := len(c.items) - 1; i >= 0; i-- {
		v := c.items[i]
		if v != nil && reflect.TypeOf(v) == t {
			return v, true
		}
	}
	return nil, false
}

// Contains reports whether an instance of exactly t is in the chain.
func (c *Chain) Contains(t reflect.Type) bool {
	_, ok := c.Find(t)
	return ok
}
