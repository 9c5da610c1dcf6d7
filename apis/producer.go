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

import (
	"reflect"
	"strconv"
)

// ProducerKind names the family a producer belongs to. It is used to
// attribute build failures.
type ProducerKind int

const (
	// KindNone is used when no producer was involved.
	KindNone ProducerKind = iota
	// KindCircularReference is the circular-reference short-circuit.
	KindCircularReference
	// KindCreationRule is a user-supplied creation rule.
	KindCreationRule
	// KindValueGenerator is a scalar value generator.
	KindValueGenerator
	// KindTypeCreator is a complex type creator.
	KindTypeCreator
)

// String returns the human-readable kind name used in diagnostics.
func (k ProducerKind) String() string {
	switch k {
	case KindNone:
		return "no producer"
	case KindCircularReference:
		return "circular reference"
	case KindCreationRule:
		return "creation rule"
	case KindValueGenerator:
		return "value generator"
	case KindTypeCreator:
		return "type creator"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Prioritized is implemented by everything that competes for a target.
// Higher values win.
type Prioritized interface {
	Priority() int
}

// ValueGenerator produces atomic values such as strings, numbers and times.
// A false IsMatch is the normal way to decline a target.
type ValueGenerator interface {
	Prioritized
	// IsMatch reports whether the generator can produce a value for
	// (t, name). It must not mutate chain.
	IsMatch(t reflect.Type, name string, chain BuildChain) bool
	// Generate produces a value for (t, name).
	Generate(strategy ExecuteStrategy, t reflect.Type, name string) (any, error)
}

// TypeCreator instantiates complex values and may populate them afterwards.
type TypeCreator interface {
	Prioritized
	// AutoPopulate reports whether created instances should have their
	// fields populated by the execute strategy.
	AutoPopulate() bool
	// AutoDetectConstructor reports whether constructor arguments should be
	// built by the execute strategy before Create is called.
	AutoDetectConstructor() bool
	// CanCreate reports whether the creator can instantiate (t, name).
	CanCreate(cfg BuildConfiguration, chain BuildChain, t reflect.Type, name string) bool
	// CanPopulate reports whether the creator can populate (t, name).
	CanPopulate(cfg BuildConfiguration, chain BuildChain, t reflect.Type, name string) bool
	// Create instantiates t. args are explicit constructor arguments.
	Create(strategy ExecuteStrategy, t reflect.Type, name string, args ...any) (any, error)
	// Populate fills instance and returns it, or its replacement for value
	// types such as arrays and slices.
	Populate(strategy ExecuteStrategy, instance any) (any, error)
}

// CreationRule is a user-supplied override that produces a value for
// matching targets ahead of generators and creators.
type CreationRule interface {
	Prioritized
	// IsMatch reports whether the rule applies to (t, name).
	IsMatch(t reflect.Type, name string) bool
	// Create produces the value for (t, name).
	Create(strategy ExecuteStrategy, t reflect.Type, name string) (any, error)
}
