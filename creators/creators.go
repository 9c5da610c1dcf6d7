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

// Package creators provides the default type creators: structs, pointers
// and collections.
package creators

import (
	"errors"

	"dirpx.dev/fixture/apis"
)

const (
	// PriorityStruct ranks the struct creator.
	PriorityStruct = 100
	// PriorityPointer ranks the pointer creator.
	PriorityPointer = 100
	// PriorityCollection ranks the collection creator.
	PriorityCollection = 100
)

var (
	// ErrNoConstructor is returned when constructor arguments are given
	// for a type without a registered constructor.
	ErrNoConstructor = errors.New("fixture(creators): no constructor registered")
	// ErrConstructorArity is returned when the number of constructor
	// arguments does not match the registered constructor.
	ErrConstructorArity = errors.New("fixture(creators): constructor argument count mismatch")
	// ErrConstructorResult is returned when a constructor result cannot be
	// adapted to the requested type.
	ErrConstructorResult = errors.New("fixture(creators): unusable constructor result")
)

// Default returns the default creators in registration order.
func Default() []apis.TypeCreator {
	return []apis.TypeCreator{
		Struct(),
		Pointer(),
		Collection(),
	}
}
