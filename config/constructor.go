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

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"dirpx.dev/fixture/apis"
	uref "dirpx.dev/fixture/utils/reflect"
)

var (
	// ErrInvalidConstructor is returned when a constructor function has an
	// unsupported signature.
	ErrInvalidConstructor = errors.New("fixture(config): invalid constructor")
	// ErrConstructorArgs is returned when a constructor is invoked with the
	// wrong arguments.
	ErrConstructorArgs = errors.New("fixture(config): bad constructor arguments")
)

var errorType = reflect.TypeFor[error]()

// NewConstructor wraps fn as an apis.Constructor. fn must be a
// non-variadic function returning T or (T, error).
func NewConstructor(fn any, names ...string) (apis.Constructor, error) {
	if fn == nil {
		return nil, apis.NilArgument("constructor")
	}
	v := reflect.ValueOf(fn)
	ft := v.Type()
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s is not a function", ErrInvalidConstructor, uref.FullName(ft))
	}
	if v.IsNil() {
		return nil, apis.NilArgument("constructor")
	}
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic %s", ErrInvalidConstructor, ft)
	}

	switch {
	case ft.NumOut() == 1 && ft.Out(0) != errorType:
	case ft.NumOut() == 2 && ft.Out(1) == errorType && ft.Out(0) != errorType:
	default:
		return nil, fmt.Errorf("%w: %s must return T or (T, error)", ErrInvalidConstructor, ft)
	}
	if len(names) != 0 && len(names) != ft.NumIn() {
		return nil, fmt.Errorf("%w: %s takes %d parameters, %d names given", ErrInvalidConstructor, ft, ft.NumIn(), len(names))
	}

	out := ft.Out(0)
	params := make([]apis.Parameter, ft.NumIn())
	for i := range params {
		name := "arg" + strconv.Itoa(i)
		if len(names) != 0 {
			name = names[i]
		}
		params[i] = apis.Parameter{DeclaringType: out, Type: ft.In(i), Name: name, Position: i}
	}

	return &constructor{fn: v, out: out, params: params, returnsErr: ft.NumOut() == 2}, nil
}

type constructor struct {
	fn         reflect.Value
	out        reflect.Type
	params     []apis.Parameter
	returnsErr bool
}

func (c *constructor) Type() reflect.Type { return c.out }

func (c *constructor) Parameters() []apis.Parameter {
	return append([]apis.Parameter(nil), c.params...)
}

func (c *constructor) Invoke(args ...any) (any, error) {
	if len(args) != len(c.params) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrConstructorArgs, uref.FullName(c.out), len(c.params), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, p := range c.params {
		in[i] = reflect.New(p.Type).Elem()
		if err := uref.Assign(in[i], args[i]); err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %w", ErrConstructorArgs, p.Name, err)
		}
	}

	out := c.fn.Call(in)
	if c.returnsErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
