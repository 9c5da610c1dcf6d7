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

// Resolver orders build actions and picks the one that serves a target.
// Typical chain: CircularReference -> CreationRule -> ValueGenerator -> TypeCreator.
type Resolver interface {
	// Resolve returns the first action, by descending priority, that reports
	// a capability for target. All results are nil when none does.
	Resolve(cfg BuildConfiguration, chain BuildChain, target BuildTarget) (BuildAction, BuildCapability, error)

	// ResolvePopulate is like Resolve but only considers capabilities that
	// support populate.
	ResolvePopulate(cfg BuildConfiguration, chain BuildChain, target BuildTarget) (BuildAction, BuildCapability, error)

	// Match summarizes Resolve as a MatchResult. NoMatch is returned when no
	// action serves target.
	Match(cfg BuildConfiguration, chain BuildChain, target BuildTarget) (*MatchResult, error)

	// Actions returns the actions in evaluation order.
	Actions() []BuildAction
}
