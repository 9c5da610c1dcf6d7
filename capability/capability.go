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

// Package capability implements apis.BuildCapability as a small sum type:
// one struct per producer kind, each bound to the build action that
// resolved it.
//
// The create operations normalize their argument into an apis.BuildTarget
// and forward to the action's Build. Populate forwards to the action's
// Populate for type creators that support it and fails with an
// apis.NotSupportedError for every other variant.
package capability

import (
	"reflect"

	"dirpx.dev/fixture/apis"
)

// Ensure every variant implements apis.BuildCapability.
var (
	_ apis.BuildCapability = (*valueGenerator)(nil)
	_ apis.BuildCapability = (*creationRule)(nil)
	_ apis.BuildCapability = (*typeCreator)(nil)
	_ apis.BuildCapability = (*circularReference)(nil)
)

// FromValueGenerator returns a create-only capability for gen.
func FromValueGenerator(action apis.BuildAction, gen apis.ValueGenerator) (apis.BuildCapability, error) {
	if action == nil {
		return nil, apis.NilArgument("buildAction")
	}
	if gen == nil {
		return nil, apis.NilArgument("generator")
	}
	return &valueGenerator{createOnly{bound{action: action, producer: reflect.TypeOf(gen), kind: apis.KindValueGenerator}}}, nil
}

// FromCreationRule returns a create-only capability for rule.
func FromCreationRule(action apis.BuildAction, rule apis.CreationRule) (apis.BuildCapability, error) {
	if action == nil {
		return nil, apis.NilArgument("buildAction")
	}
	if rule == nil {
		return nil, apis.NilArgument("rule")
	}
	return &creationRule{createOnly{bound{action: action, producer: reflect.TypeOf(rule), kind: apis.KindCreationRule}}}, nil
}

// FromTypeCreator returns a capability for creator. supportsCreate and
// supportsPopulate come from the caller's own CanCreate/CanPopulate
// evaluation; AutoPopulate and AutoDetectConstructor mirror the creator.
func FromTypeCreator(
	action apis.BuildAction,
	creator apis.TypeCreator,
	supportsCreate, supportsPopulate bool,
) (apis.BuildCapability, error) {
	if action == nil {
		return nil, apis.NilArgument("buildAction")
	}
	if creator == nil {
		return nil, apis.NilArgument("creator")
	}
	return &typeCreator{
		bound:            bound{action: action, producer: reflect.TypeOf(creator), kind: apis.KindTypeCreator},
		supportsCreate:   supportsCreate,
		supportsPopulate: supportsPopulate,
		autoPopulate:     creator.AutoPopulate(),
		autoDetectCtor:   creator.AutoDetectConstructor(),
	}, nil
}

// FromCircularReference returns the capability reported when an existing
// instance is reused instead of creating a new one.
func FromCircularReference(action apis.BuildAction) (apis.BuildCapability, error) {
	if action == nil {
		return nil, apis.NilArgument("buildAction")
	}
	return &circularReference{createOnly{bound{action: action, producer: reflect.TypeOf(action), kind: apis.KindCircularReference}}}, nil
}

// bound carries what every variant shares: the action that resolved it and
// the identity of the producer.
type bound struct {
	action   apis.BuildAction
	producer reflect.Type
	kind     apis.ProducerKind
}

func (b bound) ImplementedByType() reflect.Type { return b.producer }

// The create helpers check arguments first and only then consult gate,
// which carries the variant's refusal to create, if any.

func (b bound) createType(strategy apis.ExecuteStrategy, t reflect.Type, args []any, gate error) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if t == nil {
		return nil, apis.NilArgument("type")
	}
	if gate != nil {
		return nil, gate
	}
	return b.action.Build(strategy, apis.TypeTarget(t), args...)
}

func (b bound) createProperty(strategy apis.ExecuteStrategy, p apis.Property, args []any, gate error) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if p.Field.Type == nil {
		return nil, apis.NilArgument("property")
	}
	if gate != nil {
		return nil, gate
	}
	return b.action.Build(strategy, apis.PropertyTarget(p), args...)
}

func (b bound) createParameter(strategy apis.ExecuteStrategy, p apis.Parameter, gate error) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if p.Type == nil {
		return nil, apis.NilArgument("parameter")
	}
	if gate != nil {
		return nil, gate
	}
	return b.action.Build(strategy, apis.ParameterTarget(p))
}

func (b bound) populateNotSupported(strategy apis.ExecuteStrategy, instance any) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if instance == nil {
		return nil, apis.NilArgument("instance")
	}
	return nil, &apis.NotSupportedError{Op: "populate", Kind: b.kind, Producer: b.producer}
}

// createOnly is embedded by the variants that always create and never
// populate.
type createOnly struct{ bound }

func (createOnly) SupportsCreate() bool        { return true }
func (createOnly) SupportsPopulate() bool      { return false }
func (createOnly) AutoPopulate() bool          { return false }
func (createOnly) AutoDetectConstructor() bool { return false }

func (c createOnly) CreateType(strategy apis.ExecuteStrategy, t reflect.Type, args ...any) (any, error) {
	return c.createType(strategy, t, args, nil)
}

func (c createOnly) CreateProperty(strategy apis.ExecuteStrategy, p apis.Property, args ...any) (any, error) {
	return c.createProperty(strategy, p, args, nil)
}

func (c createOnly) CreateParameter(strategy apis.ExecuteStrategy, p apis.Parameter) (any, error) {
	return c.createParameter(strategy, p, nil)
}

func (c createOnly) Populate(strategy apis.ExecuteStrategy, instance any) (any, error) {
	return c.populateNotSupported(strategy, instance)
}

type valueGenerator struct{ createOnly }

type creationRule struct{ createOnly }

type circularReference struct{ createOnly }

type typeCreator struct {
	bound
	supportsCreate   bool
	supportsPopulate bool
	autoPopulate     bool
	autoDetectCtor   bool
}

func (c *typeCreator) SupportsCreate() bool        { return c.supportsCreate }
func (c *typeCreator) SupportsPopulate() bool      { return c.supportsPopulate }
func (c *typeCreator) AutoPopulate() bool          { return c.autoPopulate }
func (c *typeCreator) AutoDetectConstructor() bool { return c.autoDetectCtor }

func (c *typeCreator) CreateType(strategy apis.ExecuteStrategy, t reflect.Type, args ...any) (any, error) {
	return c.createType(strategy, t, args, c.createGate())
}

func (c *typeCreator) CreateProperty(strategy apis.ExecuteStrategy, p apis.Property, args ...any) (any, error) {
	return c.createProperty(strategy, p, args, c.createGate())
}

func (c *typeCreator) CreateParameter(strategy apis.ExecuteStrategy, p apis.Parameter) (any, error) {
	return c.createParameter(strategy, p, c.createGate())
}

func (c *typeCreator) Populate(strategy apis.ExecuteStrategy, instance any) (any, error) {
	if !c.supportsPopulate {
		return c.populateNotSupported(strategy, instance)
	}
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if instance == nil {
		return nil, apis.NilArgument("instance")
	}
	return c.action.Populate(strategy, instance)
}

func (c *typeCreator) createGate() error {
	if c.supportsCreate {
		return nil
	}
	return &apis.NotSupportedError{Op: "create", Kind: c.kind, Producer: c.producer}
}
