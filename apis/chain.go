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

package apis

import "reflect"

// BuildChain is the stack of instances being populated, from the root of the
// current build down to the immediately enclosing instance.
// A chain belongs to exactly one top-level build and is not safe for
// concurrent use.
type BuildChain interface {
	// Push adds instance on top of the chain.
	Push(instance any)
	// Pop removes and returns the top instance, or nil when empty.
	Pop() any
	// Last returns the top instance without removing it, or nil when empty.
	Last() any
	// First returns the root instance, or nil when empty.
	First() any
	// Count returns the number of instances in the chain.
	Count() int
	// Items returns a snapshot of the chain, root first.
	Items() []any
	// Find returns the most recent instance whose runtime type is exactly t.
	Find(t reflect.Type) (any, bool)
	// Contains reports whether an instance of exactly t is in the chain.
	Contains(t reflect.Type) bool
}
