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

// BuildAction is one stage of the dispatch pipeline. It decides whether its
// family of producers can serve a target and delegates production to the
// best one.
//
// No-match is not an error: IsMatch returns false, GetBuildCapability and
// Build return nil values with a nil error.
type BuildAction interface {
	Prioritized
	IsMatch(cfg BuildConfiguration, chain BuildChain, target BuildTarget) (bool, error)
	// GetBuildCapability returns nil when the action abstains.
	GetBuildCapability(cfg BuildConfiguration, chain BuildChain, target BuildTarget) (BuildCapability, error)
	Build(strategy ExecuteStrategy, target BuildTarget, args ...any) (any, error)
	Populate(strategy ExecuteStrategy, instance any) (any, error)
}
