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

// Builder composes a Resolver and per-build ExecuteStrategy instances from a
// BuildConfiguration.
type Builder interface {
	// BuildResolver constructs the action pipeline for cfg.
	BuildResolver(cfg BuildConfiguration) Resolver
	// BuildStrategy constructs a strategy for one top-level build, with its
	// own chain. log may be nil, in which case the builder supplies one.
	BuildStrategy(cfg BuildConfiguration, res Resolver, log BuildLog) (ExecuteStrategy, error)
}
