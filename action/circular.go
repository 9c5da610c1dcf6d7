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
	"math"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/capability"
)

// CircularReferencePriority places the circular-reference check ahead of
// every other stage.
const CircularReferencePriority = math.MaxInt

// NewCircularReference creates the stage that returns an instance already
// present in the build chain instead of building a new one.
func NewCircularReference() *CircularReference {
	return &CircularReference{}
}

// CircularReference matches a target when an instance of exactly the
// target type is being built further up the chain. Assignable types and
// interface implementations are not considered.
type CircularReference struct{}

// Ensure CircularReference implements apis.BuildAction.
var _ apis.BuildAction = (*CircularReference)(nil)

// Priority implements apis.BuildAction.
func (*CircularReference) Priority() int { return CircularReferencePriority }

// IsMatch reports whether chain holds an instance of exactly target.Type.
// The configuration is not consulted and may be nil.
func (a *CircularReference) IsMatch(_ apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (bool, error) {
	if chain == nil {
		return false, apis.NilArgument("buildChain")
	}
	if err := target.Validate(); err != nil {
		return false, err
	}
	return chain.Contains(target.Type), nil
}

// GetBuildCapability returns a create-only capability when IsMatch is true.
func (a *CircularReference) GetBuildCapability(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (apis.BuildCapability, error) {
	ok, err := a.IsMatch(cfg, chain, target)
	if err != nil || !ok {
		return nil, err
	}
	return capability.FromCircularReference(a)
}

// Build returns the most recent instance of target.Type from the strategy's
// chain, or nil when there is none.
func (a *CircularReference) Build(strategy apis.ExecuteStrategy, target apis.BuildTarget, _ ...any) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	chain := strategy.BuildChain()
	if chain == nil {
		return nil, nil
	}
	instance, ok := chain.Find(target.Type)
	if !ok {
		return nil, nil
	}
	if log := strategy.Log(); log != nil {
		log.CircularReferenceDetected(target.Type)
	}
	return instance, nil
}

// Populate is not supported: a reused instance is already being populated
// further up the chain.
func (a *CircularReference) Populate(strategy apis.ExecuteStrategy, instance any) (any, error) {
	if strategy == nil {
		return nil, apis.NilArgument("executeStrategy")
	}
	if instance == nil {
		return nil, apis.NilArgument("instance")
	}
	return nil, &apis.NotSupportedError{Op: "populate", Kind: apis.KindCircularReference}
}
