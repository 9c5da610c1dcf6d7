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

package resolver

import (
	"cmp"
	"slices"

	"dirpx.dev/fixture/apis"
)

// New constructs an apis.Resolver that consults the given build actions in
// descending priority order. Actions with equal priority keep the order they
// were passed in. Nil actions are ignored. The returned resolver is safe for
// concurrent use provided the actions themselves are.
func New(actions ...apis.BuildAction) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.BuildAction, 0, len(actions))
	for _, a := range actions {
		if a != nil {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b apis.BuildAction) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
	return pipeline{actions: out}
}

// pipeline is an immutable, priority-ordered resolver over a set of actions.
type pipeline struct {
	actions []apis.BuildAction
}

// Ensure pipeline implements apis.Resolver.
var _ apis.Resolver = pipeline{}

// Resolve returns the first action, in priority order, that offers a
// capability for target. It returns (nil, nil, nil) when no action does.
func (r pipeline) Resolve(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (apis.BuildAction, apis.BuildCapability, error) {
	return r.first(cfg, chain, target, func(apis.BuildCapability) bool { return true })
}

// ResolvePopulate returns the first action whose capability can populate
// target. Create-only stages such as circular references are skipped.
func (r pipeline) ResolvePopulate(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (apis.BuildAction, apis.BuildCapability, error) {
	return r.first(cfg, chain, target, apis.BuildCapability.SupportsPopulate)
}

// Match summarizes the capability Resolve would pick. It returns
// apis.NoMatch when nothing resolves.
func (r pipeline) Match(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (*apis.MatchResult, error) {
	_, c, err := r.Resolve(cfg, chain, target)
	if err != nil {
		return nil, err
	}
	return apis.MatchFromCapability(c), nil
}

// Actions returns a copy of the actions in resolution order.
func (r pipeline) Actions() []apis.BuildAction {
	return slices.Clone(r.actions)
}

func (r pipeline) first(
	cfg apis.BuildConfiguration,
	chain apis.BuildChain,
	target apis.BuildTarget,
	accept func(apis.BuildCapability) bool,
) (apis.BuildAction, apis.BuildCapability, error) {
	if cfg == nil {
		return nil, nil, apis.NilArgument("buildConfiguration")
	}
	if chain == nil {
		return nil, nil, apis.NilArgument("buildChain")
	}
	if err := target.Validate(); err != nil {
		return nil, nil, err
	}

	for _, a := range r.actions {
		c, err := a.GetBuildCapability(cfg, chain, target)
		if err != nil {
			return nil, nil, err
		}
		if c != nil && accept(c) {
			return a, c, nil
		}
	}
	return nil, nil, nil
}
