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

// Pointer returns the creator for pointers to anything but structs.
func Pointer() *PointerCreator { return &PointerCreator{} }

// PointerCreator allocates a pointer and builds its element through the
// strategy under the same reference name.
type PointerCreator struct{}

// Ensure PointerCreator implements apis.TypeCreator.
var _ apis.TypeCreator = (*PointerCreator)(nil)

// Priority implements apis.TypeCreator.
func (*PointerCreator) Priority() int { return PriorityPointer }

// AutoPopulate implements apis.TypeCreator.
func (*PointerCreator) AutoPopulate() bool { return false }

// AutoDetectConstructor implements apis.TypeCreator.
func (*PointerCreator) AutoDetectConstructor() bool { return false }

// CanCreate implements apis.TypeCreator.
func (*PointerCreator) CanCreate(_ apis.BuildConfiguration, _ apis.BuildChain, t reflect.Type, _ string) bool {
	return t != nil && t.Kind() == reflect.Pointer && !uref.IsStructPointer(t)
}

// CanPopulate implements apis.TypeCreator.
func (*PointerCreator) CanPopulate(apis.BuildConfiguration, apis.BuildChain, reflect.Type, string) bool {
	return false
}

// Create implements apis.TypeCreator.
func (*PointerCreator) Create(s apis.ExecuteStrategy, t reflect.Type, name string, _ ...any) (any, error) {
	elem, err := s.Build(apis.BuildTarget{Kind: apis.TargetType, Type: t.Elem(), Name: name})
	if err != nil {
		return nil, err
	}
	p := reflect.New(t.Elem())
	if err := uref.Assign(p.Elem(), elem); err != nil {
		return nil, err
	}
	return p.Interface(), nil
}

// Populate implements apis.TypeCreator.
func (*PointerCreator) Populate(apis.ExecuteStrategy, any) (any, error) {
	return nil, &apis.NotSupportedError{Op: "populate", Kind: apis.KindTypeCreator, Producer: reflect.TypeFor[*PointerCreator]()}
}
