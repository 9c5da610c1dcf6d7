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

	uref "dirpx.dev/fixture/utils/reflect"
)

// Settings carries read-only knobs that influence the execute strategy.
// It is passed by value and should be treated as immutable.
type Settings struct {
	// MaxDepth limits how many instances may be nested in a build chain.
	// Targets beyond the limit are left at their zero value.
	MaxDepth int

	// CollectionSize is the number of elements put in generated slices
	// and maps.
	CollectionSize int
}

// IgnoreRule skips a struct field during population.
type IgnoreRule struct {
	// DeclaringType restricts the rule to one struct type. Nil matches any.
	DeclaringType reflect.Type
	// DeclaringTypeName restricts the rule by full type name, as rendered
	// by FullName. It is used by rules loaded from settings files, where no
	// reflect.Type is available. Empty matches any.
	DeclaringTypeName string
	// Name is the field name.
	Name string
}

// Matches reports whether the rule applies to target.
func (r IgnoreRule) Matches(target BuildTarget) bool {
	if target.Kind != TargetProperty || target.Name != r.Name {
		return false
	}
	if r.DeclaringType != nil && r.DeclaringType != target.DeclaringType {
		return false
	}
	return r.DeclaringTypeName == "" || r.DeclaringTypeName == uref.FullName(target.DeclaringType)
}

// TypeMapping substitutes Target whenever Source is requested, typically an
// interface and one of its implementations.
type TypeMapping struct {
	Source reflect.Type
	Target reflect.Type
}

// Constructor is a registered constructor function for one type.
type Constructor interface {
	// Type returns the type the constructor produces.
	Type() reflect.Type
	// Parameters describes the constructor arguments in order.
	Parameters() []Parameter
	// Invoke calls the constructor. Nil arguments are passed as zero values.
	Invoke(args ...any) (any, error)
}

// BuildConfiguration exposes the producer registries and rules a build uses.
// Slices returned are snapshots in registration order; callers must not
// modify them.
type BuildConfiguration interface {
	CreationRules() []CreationRule
	ValueGenerators() []ValueGenerator
	TypeCreators() []TypeCreator
	IgnoreRules() []IgnoreRule
	// TypeMapping returns the substitute for t, if one is registered.
	TypeMapping(t reflect.Type) (reflect.Type, bool)
	// Constructor returns the constructor registered for t, if any.
	Constructor(t reflect.Type) (Constructor, bool)
	Settings() Settings
}
