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

import "reflect"

// BuildCapability describes what one producer can do for one resolved
// target. It is created per resolution and immutable afterwards.
//
// Every operation is always legal to call: Create operations fail with a
// NotSupportedError when SupportsCreate is false, and Populate fails the
// same way when SupportsPopulate is false.
type BuildCapability interface {
	// ImplementedByType identifies the producer.
	ImplementedByType() reflect.Type
	SupportsCreate() bool
	SupportsPopulate() bool
	// AutoPopulate reports whether the created value should additionally
	// be populated field by field.
	AutoPopulate() bool
	// AutoDetectConstructor reports whether constructor arguments should
	// be built automatically.
	AutoDetectConstructor() bool

	CreateType(strategy ExecuteStrategy, t reflect.Type, args ...any) (any, error)
	CreateProperty(strategy ExecuteStrategy, p Property, args ...any) (any, error)
	CreateParameter(strategy ExecuteStrategy, p Parameter) (any, error)
	Populate(strategy ExecuteStrategy, instance any) (any, error)
}
