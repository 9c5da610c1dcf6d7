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

// ExecuteStrategy walks an object graph and invokes build actions for each
// type, field and constructor parameter it meets. Build actions read its
// configuration, chain and log; producers use it to build nested values.
type ExecuteStrategy interface {
	// Configuration returns the configuration the strategy builds with.
	Configuration() BuildConfiguration
	// BuildChain returns the chain of the current build.
	BuildChain() BuildChain
	// Log returns the log of the current build.
	Log() BuildLog
	// Build creates (and when required populates) a value for target.
	Build(target BuildTarget, args ...any) (any, error)
	// Populate fills an existing instance and returns it.
	Populate(instance any) (any, error)
}
