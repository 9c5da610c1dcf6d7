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

package creators

import (
	"fmt"
	"reflect"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/strategy"
	uref "dirpx.dev/fixture/utils/reflect"
)

// Struct returns the creator for structs and pointers to structs.
func Struct() *StructCreator { return &StructCreator{} }

// StructCreator instantiates structs, through their registered constructor
// when there is one, and populates their fields.
type StructCreator struct{}

// Ensure StructCreator implements apis.TypeCreator.
var _ apis.TypeCreator = (*StructCreator)(nil)

// Priority implements apis.TypeCreator.
func (*StructCreator) Priority() int { return PriorityStruct }

// AutoPopulate implements apis.TypeCreator.
func (*StructCreator) AutoPopulate() bool { return true }

// AutoDetectConstructor implements apis.TypeCreator.
func (*StructCreator) AutoDetectConstructor() bool { return true }

// CanCreate implements apis.TypeCreator.
func (*StructCreator) CanCreate(_ apis.BuildConfiguration, _ apis.BuildChain, t reflect.Type, _ string) bool {
	return isStruct(t)
}

// CanPopulate implements apis.TypeCreator.
func (*StructCreator) CanPopulate(_ apis.BuildConfiguration, _ apis.BuildChain, t reflect.Type, _ string) bool {
	return isStruct(t)
}

// Create implements apis.TypeCreator. With a registered constructor whose
// arity matches args, the constructor result is adapted to t. Arguments that
// do not fit the constructor fail with ErrConstructorArity. Without
// arguments a zero value is allocated.
func (*StructCreator) Create(s apis.ExecuteStrategy, t reflect.Type, _ string, args ...any) (any, error) {
	if ctor, ok := s.Configuration().Constructor(t); ok {
		if n := len(ctor.Parameters()); n != len(args) {
			if len(args) == 0 {
				return zero(t), nil
			}
			return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrConstructorArity, uref.FullName(t), n, len(args))
		}
		v, err := ctor.Invoke(args...)
		if err != nil {
			return nil, err
		}
		return adapt(v, t)
	}
	if len(args) != 0 {
		return nil, fmt.Errorf("%w for %s with %d arguments", ErrNoConstructor, uref.FullName(t), len(args))
	}
	return zero(t), nil
}

// zero allocates an empty struct, or a pointer to one.
func zero(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Elem().Interface()
}

// Populate implements apis.TypeCreator.
func (*StructCreator) Populate(s apis.ExecuteStrategy, instance any) (any, error) {
	return strategy.PopulateFields(s, instance)
}

func isStruct(t reflect.Type) bool {
	return t != nil && (t.Kind() == reflect.Struct || uref.IsStructPointer(t))
}

// adapt converts a constructor result between T and *T.
func adapt(v any, t reflect.Type) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil for %s", ErrConstructorResult, uref.FullName(t))
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Type() == t:
		return v, nil
	case rv.Kind() == reflect.Pointer && rv.Type().Elem() == t:
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: nil %s", ErrConstructorResult, uref.FullName(rv.Type()))
		}
		return rv.Elem().Interface(), nil
	case t.Kind() == reflect.Pointer && t.Elem() == rv.Type():
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		return p.Interface(), nil
	}
	return nil, fmt.Errorf("%w: %s for %s", ErrConstructorResult, uref.FullName(rv.Type()), uref.FullName(t))
}
