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

// CreationRulePriority ranks user rules above generators and creators.
const CreationRulePriority = 5000

// NewCreationRule creates the stage backed by the configured creation rules.
func NewCreationRule() *CreationRule {
	return &CreationRule{}
}

// CreationRule delegates to the highest-priority matching creation rule.
type CreationRule struct{}

// Ensure CreationRule implements apis.BuildAction.
var _ apis.BuildAction = (*CreationRule)(nil)

// Priority implements apis.BuildAction.
func (*CreationRule) Priority() int { return CreationRulePriority }

// IsMatch reports whether any configured rule matches target.
func (a *CreationRule) IsMatch(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (bool, error) {
	if cfg == nil {
		return false, apis.NilArgument("buildConfiguration")
	}
	if chain == nil {
		return false, apis.NilArgument("buildChain")
	}
	if err := target.Validate(); err != nil {
		return false, err
	}
	_, ok := selectRule(cfg, target)
	return ok, nil
}

// GetBuildCapability returns a create-only capability for the best rule.
func (a *CreationRule) GetBuildCapability(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (apis.BuildCapability, error) {
	if cfg == nil {
		return nil, apis.NilArgument("buildConfiguration")
	}
	if chain == nil {
		return nil, apis.NilArgument("buildChain")
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	rule, ok := selectRule(cfg, target)
	if !ok {
		return nil, nil
	}
	return capability.FromCreationRule(a, rule)
}

// Build invokes the best rule for target. It returns nil without error when
// no rule matches so the next stage can take over.
func (a *CreationRule) Build(strategy apis.ExecuteStrategy, target apis.BuildTarget, _ ...any) (any, error) {
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
	rule, ok := selectRule(cfg, target)
	if !ok {
		return nil, nil
	}

	if log := strategy.Log(); log != nil {
		log.CreatingValue(target.Type, reflect.TypeOf(rule), logContext(strategy.BuildChain()))
	}
	return produce(strategy, target, apis.KindCreationRule, rule, func() (any, error) {
		return rule.Create(strategy, target.Type, target.Name)
	})
}

// Populate is not supported by creation rules.
func (a *CreationRule) Populate(strategy apis.ExecuteStrategy, instance any) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if instance == nil {
		return nil, apis.NilArgument("instance")
	}
	return nil, &apis.NotSupportedError{Op: "populate", Kind: apis.KindCreationRule}
}

func selectRule(cfg apis.BuildConfiguration, target apis.BuildTarget) (apis.CreationRule, bool) {
	return registry.Select(cfg.CreationRules(), func(r apis.CreationRule) bool {
		return r.IsMatch(target.Type, target.Name)
	})
}
