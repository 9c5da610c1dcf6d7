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
	"reflect"

	"dirpx.dev/fixture/apis"
	uref "dirpx.dev/fixture/utils/reflect"
)

// Collection returns the creator for slices, arrays and maps.
func Collection() *CollectionCreator { return &CollectionCreator{} }

// CollectionCreator creates empty collections and fills them with
// Settings.CollectionSize elements built through the strategy.
type CollectionCreator struct{}

// Ensure CollectionCreator implements apis.TypeCreator.
var _ apis.TypeCreator = (*CollectionCreator)(nil)

// Priority implements apis.TypeCreator.
func (*CollectionCreator) Priority() int { return PriorityCollection }

// AutoPopulate implements apis.TypeCreator. Elements are added by Populate,
// not by field population.
func (*CollectionCreator) AutoPopulate() bool { return false }

// AutoDetectConstructor implements apis.TypeCreator.
func (*CollectionCreator) AutoDetectConstructor() bool { return false }

// CanCreate implements apis.TypeCreator.
func (*CollectionCreator) CanCreate(_ apis.BuildConfiguration, _ apis.BuildChain, t reflect.Type, _ string) bool {
	return isCollection(t)
}

// CanPopulate implements apis.TypeCreator.
func (*CollectionCreator) CanPopulate(_ apis.BuildConfiguration, _ apis.BuildChain, t reflect.Type, _ string) bool {
	return isCollection(t)
}

// Create implements apis.TypeCreator.
func (*CollectionCreator) Create(_ apis.ExecuteStrategy, t reflect.Type, _ string, _ ...any) (any, error) {
	switch t.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface(), nil
	case reflect.Map:
		return reflect.MakeMap(t).Interface(), nil
	default:
		return reflect.Zero(t).Interface(), nil
	}
}

// Populate implements apis.TypeCreator. Slices get CollectionSize elements
// appended, arrays have every element set and maps receive up to
// CollectionSize entries. The filled collection is returned.
func (*CollectionCreator) Populate(s apis.ExecuteStrategy, instance any) (any, error) {
	rv := reflect.ValueOf(instance)
	t := rv.Type()
	size := s.Configuration().Settings().CollectionSize

	switch t.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(t, rv.Len(), rv.Len()+size)
		reflect.Copy(out, rv)
		for i := 0; i < size; i++ {
			v, err := buildElem(s, t.Elem())
			if err != nil {
				return nil, err
			}
			out = reflect.Append(out, v)
		}
		return out.Interface(), nil

	case reflect.Array:
		out := reflect.New(t).Elem()
		reflect.Copy(out, rv)
		for i := 0; i < t.Len(); i++ {
			v, err := buildElem(s, t.Elem())
			if err != nil {
				return nil, err
			}
			out.Index(i).Set(v)
		}
		return out.Interface(), nil

	case reflect.Map:
		out := rv
		if rv.IsNil() {
			out = reflect.MakeMap(t)
		}
		for i := 0; i < size; i++ {
			k, err := buildElem(s, t.Key())
			if err != nil {
				return nil, err
			}
			v, err := buildElem(s, t.Elem())
			if err != nil {
				return nil, err
			}
			out.SetMapIndex(k, v)
		}
		return out.Interface(), nil
	}

	return nil, &apis.NotSupportedError{Op: "populate", Kind: apis.KindTypeCreator, Producer: reflect.TypeFor[*CollectionCreator]()}
}

// buildElem builds one element of type t. Nil results become the zero
// value.
func buildElem(s apis.ExecuteStrategy, t reflect.Type) (reflect.Value, error) {
	v, err := s.Build(apis.TypeTarget(t))
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(t).Elem()
	if err := uref.Assign(out, v); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func isCollection(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}
