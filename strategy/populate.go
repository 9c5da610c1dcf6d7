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

package strategy

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/fixture/apis"
	uref "dirpx.dev/fixture/utils/reflect"
)

var (
	// ErrNotStruct is returned when field population is asked for a value
	// that is neither a struct nor a pointer to one.
	ErrNotStruct = errors.New("fixture(strategy): not a struct or struct pointer")
	// ErrFieldAssign is returned when a built value cannot be stored in its
	// field.
	ErrFieldAssign = errors.New("fixture(strategy): cannot assign field")
)

// fieldCache caches the exported fields of struct types.
var fieldCache sync.Map // key: reflect.Type, val: []reflect.StructField

// PopulateFields builds a value for every exported, zero-valued field of
// instance through s. Fields matched by an ignore rule are skipped.
//
// A pointer is populated in place and returned. A struct value is copied,
// populated and the copy returned. A nil pointer is returned unchanged.
func PopulateFields(s apis.ExecuteStrategy, instance any) (any, error) {
	if s == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if instance == nil {
		return nil, apis.NilArgument("instance")
	}

	rv := reflect.ValueOf(instance)
	var (
		target reflect.Value
		byVal  bool
	)
	switch {
	case rv.Kind() == reflect.Pointer && rv.Type().Elem().Kind() == reflect.Struct:
		if rv.IsNil() {
			return instance, nil
		}
		target = rv.Elem()
	case rv.Kind() == reflect.Struct:
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		target, byVal = p.Elem(), true
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, uref.FullName(rv.Type()))
	}

	st := target.Type()
	ignores := s.Configuration().IgnoreRules()

	for _, f := range exportedFields(st) {
		fv := target.FieldByIndex(f.Index)
		if !fv.CanSet() || !fv.IsZero() {
			continue
		}

		ft := apis.PropertyTarget(apis.Property{DeclaringType: st, Field: f})
		if ignored(ignores, ft) {
			s.Log().IgnoringProperty(ft)
			continue
		}

		v, err := s.Build(ft)
		if err != nil {
			return nil, err
		}
		if err := uref.Assign(fv, v); err != nil {
			return nil, fmt.Errorf("%w %s.%s: %w", ErrFieldAssign, uref.FullName(st), f.Name, err)
		}
	}

	if byVal {
		return target.Interface(), nil
	}
	return instance, nil
}

// exportedFields lists the exported direct fields of st in declaration
// order. Embedded structs are fields like any other.
func exportedFields(st reflect.Type) []reflect.StructField {
	if v, ok := fieldCache.Load(st); ok {
		return v.([]reflect.StructField)
	}

	fields := make([]reflect.StructField, 0, st.NumField())
	for i := 0; i < st.NumField(); i++ {
		if f := st.Field(i); f.IsExported() {
			fields = append(fields, f)
		}
	}

	v, _ := fieldCache.LoadOrStore(st, fields)
	return v.([]reflect.StructField)
}

func ignored(rules []apis.IgnoreRule, target apis.BuildTarget) bool {
	for _, r := range rules {
		if r.Matches(target) {
			return true
		}
	}
	return false
}
