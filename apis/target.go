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

// TargetKind identifies the shape a build request originated from.
type TargetKind int

const (
	// TargetType is a bare type request. It carries a reference name only
	// when derived from a named target, such as the element of a pointer
	// field.
	TargetType TargetKind = iota
	// TargetProperty is a struct field request.
	TargetProperty
	// TargetParameter is a constructor parameter request.
	TargetParameter
)

// String returns the lower-case name of the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetType:
		return "type"
	case TargetProperty:
		return "property"
	case TargetParameter:
		return "parameter"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Property describes a struct field being built.
type Property struct {
	// DeclaringType is the struct type that owns the field.
	DeclaringType reflect.Type
	// Field is the reflected field.
	Field reflect.StructField
}

// Parameter describes a constructor parameter being built.
type Parameter struct {
	// DeclaringType is the type the constructor produces.
	DeclaringType reflect.Type
	// Type is the parameter type.
	Type reflect.Type
	// Name is the parameter name supplied at constructor registration.
	Name string
	// Position is the zero-based argument index.
	Position int
}

// BuildTarget is the normalized (type, reference name) pair every producer
// matches against. It is built once at the dispatch boundary.
type BuildTarget struct {
	Kind          TargetKind
	Type          reflect.Type
	Name          string
	DeclaringType reflect.Type
	Position      int
}

// TypeTarget normalizes a bare type request.
func TypeTarget(t reflect.Type) BuildTarget {
	return BuildTarget{Kind: TargetType, Type: t}
}

// PropertyTarget normalizes a struct field request.
func PropertyTarget(p Property) BuildTarget {
	return BuildTarget{
		Kind:          TargetProperty,
		Type:          p.Field.Type,
		Name:          p.Field.Name,
		DeclaringType: p.DeclaringType,
	}
}

// ParameterTarget normalizes a constructor parameter request.
func ParameterTarget(p Parameter) BuildTarget {
	return BuildTarget{
		Kind:          TargetParameter,
		Type:          p.Type,
		Name:          p.Name,
		DeclaringType: p.DeclaringType,
		Position:      p.Position,
	}
}

// WithType returns a copy of the target resolved to another type.
// The reference name and origin are kept.
func (t BuildTarget) WithType(rt reflect.Type) BuildTarget {
	t.Type = rt
	return t
}

// Validate reports an ArgumentError named after the target kind when the
// target carries no type.
func (t BuildTarget) Validate() error {
	if t.Type == nil {
		return NilArgument(t.Kind.String())
	}
	return nil
}

// String renders the target for log output, e.g. "property Person.Email (string)".
func (t BuildTarget) String() string {
	if t.Type == nil {
		return t.Kind.String() + " <nil>"
	}
	switch t.Kind {
	case TargetProperty, TargetParameter:
		owner := "?"
		if t.DeclaringType != nil {
			owner = t.DeclaringType.String()
		}
		return t.Kind.String() + " " + owner + "." + t.Name + " (" + t.Type.String() + ")"
	default:
		return "type " + t.Type.String()
	}
}
