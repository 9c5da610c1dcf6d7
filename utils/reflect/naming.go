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

package reflect

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotAssignable is returned when a value can neither be assigned
	// nor converted to the destination type.
	ErrReflectNotAssignable = errors.New("reflect: value not assignable to destination")
	// ErrReflectNotSettable is returned when the destination cannot be set.
	ErrReflectNotSettable = errors.New("reflect: destination is not settable")
)

// FullName returns the fully qualified name of t: "import/path.Name" for
// named types, recursively qualified element types for pointers, slices,
// arrays and maps, and t.String() for everything else.
// A nil type renders as "<nil>".
func FullName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}
		return t.PkgPath() + "." + t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + FullName(t.Elem())
	case reflect.Slice:
		return "[]" + FullName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + FullName(t.Elem())
	case reflect.Map:
		return "map[" + FullName(t.Key()) + "]" + FullName(t.Elem())
	default:
		return t.String()
	}
}

// Indirect returns the pointer depth of t and the final non-pointer type.
func Indirect(t reflect.Type) (depth int, base reflect.Type) {
	base = t
	for base != nil && base.Kind() == reflect.Pointer {
		depth++
		base = base.Elem()
	}
	return depth, base
}

// IsStructPointer reports whether t is a pointer to a struct.
func IsStructPointer(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// Zero returns the zero value of t as an interface.
func Zero(t reflect.Type) (any, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	return reflect.Zero(t).Interface(), nil
}

// Assign stores v into dst. A nil v leaves dst untouched. Values that are not
// directly assignable are converted as described by Convert.
func Assign(dst reflect.Value, v any) error {
	if !dst.CanSet() {
		return ErrReflectNotSettable
	}
	if v == nil {
		return nil
	}
	out, err := Convert(v, dst.Type())
	if err != nil {
		return err
	}
	dst.Set(reflect.ValueOf(out))
	return nil
}

// Convert returns v as a value of type t. Assignable values are returned
// unchanged. Conversion is limited to types of the same kind, such as a
// string and a named string type, so lossy conversions like int to string
// or float to int are rejected with ErrReflectNotAssignable.
func Convert(v any, t reflect.Type) (any, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if v == nil {
		return nil, fmt.Errorf("%w: <nil> into %s", ErrReflectNotAssignable, FullName(t))
	}
	src := reflect.ValueOf(v)
	switch {
	case src.Type().AssignableTo(t):
		return v, nil
	case src.Kind() == t.Kind() && src.Type().ConvertibleTo(t):
		return src.Convert(t).Interface(), nil
	default:
		return nil, fmt.Errorf("%w: %s into %s", ErrReflectNotAssignable, FullName(src.Type()), FullName(t))
	}
}
