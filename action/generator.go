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

// ValueGeneratorPriority ranks scalar generators between creation rules and
// type creators.
const ValueGeneratorPriority = 4000

// NewValueGenerator creates the stage backed by the configured value
// generators.
func NewValueGenerator() *ValueGenerator {
	return &ValueGenerator{}
}

// ValueGenerator delegates to the highest-priority matching value
// generator. Generated values are atomic: they are never populated.
type ValueGenerator struct{}

// Ensure ValueGenerator implements apis.BuildAction.
var _ apis.BuildAction = (*ValueGenerator)(nil)

// Priority implements apis.BuildAction.
func (*ValueGenerator) Priority() int { return ValueGeneratorPriority }

// IsMatch reports whether any configured generator matches target.
func (a *ValueGenerator) IsMatch(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (bool, error) {
	c, err := a.GetBuildCapability(cfg, chain, target)
	return c != nil, err
}

// GetBuildCapability returns a create-only capability for the best
// generator, or nil when none matches.
func (a *ValueGenerator) GetBuildCapability(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (apis.BuildCapability, error) {
	if cfg == nil {
		return nil, apis.NilArgument("buildConfiguration")
	}
	if chain == nil {
		return nil, apis.NilArgument("buildChain")
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	gen, ok := selectGenerator(cfg, chain, target)
	if !ok {
		return nil, nil
	}
	return capability.FromValueGenerator(a, gen)
}

// Build invokes the best generator for target, or returns nil when none
// matches.
func (a *ValueGenerator) Build(strategy apis.ExecuteStrategy, target apis.BuildTarget, _ ...any) (any, error) {
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
	gen, ok := selectGenerator(cfg, chain, target)
	if !ok {
		return nil, nil
	}

	if log := strategy.Log(); log != nil {
		log.CreatingValue(target.Type, reflect.TypeOf(gen), chain.Last())
	}
	return produce(strategy, target, apis.KindValueGenerator, gen, func() (any, error) {
		return gen.Generate(strategy, target.Type, target.Name)
	})
}

// Populate always fails with a NotSupportedError once its arguments are
// valid.
func (a *ValueGenerator) Populate(strategy apis.ExecuteStrategy, instance any) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if instance == nil {
		return nil, apis.NilArgument("instance")
	}
	return nil, &apis.NotSupportedError{Op: "populate", Kind: apis.KindValueGenerator}
}

func selectGenerator(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (apis.ValueGenerator, bool) {
	return registry.Select(cfg.ValueGenerators(), func(g apis.ValueGenerator) bool {
		return g.IsMatch(target.Type, target.Name, chain)
	})
}
