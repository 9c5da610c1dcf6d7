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

// Package strategy implements the execute strategy: the walker that turns
// a build request into a populated object graph.
//
// For every target the strategy applies type mappings, asks the resolver
// for the highest-priority build action that can create it, builds
// constructor arguments when the capability asks for them, invokes the
// action and finally populates the new instance. Instances being populated
// sit on the build chain so nested requests for the same type can reuse
// them instead of recursing forever.
//
// A Strategy owns its chain and is meant for one build on one goroutine.
// Configuration, resolver and producers are shared and must be safe for
// concurrent use.
package strategy
