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

package action

import (
	"reflect"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/capability"
	"dirpx.dev/fixture/registry"
)

// TypeCreatorPriority ranks generic construction last among the producer
// stages.
const TypeCreatorPriority = 3000

// NewTypeCreator creates the stage backed by the configured type creators.
func NewTypeCreator() *TypeCreator {
	return &TypeCreator{}
}

// TypeCreator delegates creation and population to the highest-priority
// matching type creator.
type TypeCreator struct{}

// Ensure TypeCreator implements apis.BuildAction.
var _ apis.BuildAction = (*TypeCreator)(nil)

// Priority implements apis.BuildAction.
func (*TypeCreator) Priority() int { return TypeCreatorPriority }

// IsMatch reports whether any configured creator can create target.
func (a *TypeCreator) IsMatch(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (bool, error) {
	c, err := a.GetBuildCapability(cfg, chain, target)
	return c != nil, err
}

// GetBuildCapability returns the capability of the best creator whose
// CanCreate accepts target, or nil when none does.
func (a *TypeCreator) GetBuildCapability(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (apis.BuildCapability, error) {
	if cfg == nil {
		return nil, apis.NilArgument("buildConfiguration")
	}
	if chain == nil {
		return nil, apis.NilArgument("buildChain")
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	creator, ok := selectCreator(cfg, chain, target.Type, target.Name)
	if !ok {
		return nil, nil
	}
	canPopulate := creator.CanPopulate(cfg, chain, target.Type, target.Name)
	return capability.FromTypeCreator(a, creator, true, canPopulate)
}

// Build invokes the best creator for target with args as explicit
// constructor arguments, or returns nil when none matches.
func (a *TypeCreator) Build(strategy apis.ExecuteStrategy, target apis.BuildTarget, args ...any) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	cfg := strategy.Configuration()
	if cfg == nil {
		return nil, apis.NilArgument("buildConfiguration")
	}
	chain := strategy.BuildChain()
	if chain == nil {
		return nil, apis.NilArgument("buildChain")
	}
	creator, ok := selectCreator(cfg, chain, target.Type, target.Name)
	if !ok {
		return nil, nil
	}

	if log := strategy.Log(); log != nil {
		log.CreatingType(target.Type, reflect.TypeOf(creator), chain.Last())
	}
	return produce(strategy, target, apis.KindTypeCreator, creator, func() (any, error) {
		return creator.Create(strategy, target.Type, target.Name, args...)
	})
}

// Populate hands instance to the best creator that can populate its runtime
// type. Without one, instance is returned unchanged.
func (a *TypeCreator) Populate(strategy apis.ExecuteStrategy, instance any) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if instance == nil {
		return nil, apis.NilArgument("instance")
	}

	cfg := strategy.Configuration()
	if cfg == nil {
		return nil, apis.NilArgument("buildConfiguration")
	}
	chain := strategy.BuildChain()
	if chain == nil {
		return nil, apis.NilArgument("buildChain")
	}

	t := reflect.TypeOf(instance)
	creator, ok := registry.Select(cfg.TypeCreators(), func(c apis.TypeCreator) bool {
		return c.CanPopulate(cfg, chain, t, "")
	})
	if !ok {
		return instance, nil
	}

	if log := strategy.Log(); log != nil {
		log.PopulatingInstance(instance)
	}
	return produce(strategy, apis.TypeTarget(t), apis.KindTypeCreator, creator, func() (any, error) {
		return creator.Populate(strategy, instance)
	})
}

func selectCreator(cfg apis.BuildConfiguration, chain apis.BuildChain, t reflect.Type, name string) (apis.TypeCreator, bool) {
	return registry.Select(cfg.TypeCreators(), func(c apis.TypeCreator) bool {
		return c.CanCreate(cfg, chain, t, name)
	})
}
