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

// Package action implements the stages of the build dispatch pipeline.
//
// Each stage is an apis.BuildAction that owns one family of producers:
//
//	CircularReference  priority math.MaxInt  reuses an instance already in the build chain
//	CreationRule       priority 5000         user-supplied overrides
//	ValueGenerator     priority 4000         scalar values (strings, numbers, times)
//	TypeCreator        priority 3000         structs, pointers and collections
//
// A stage matches a target when at least one of its producers does; among
// matching producers the one with the highest priority is used and ties go
// to the producer registered first. Producer failures are wrapped into an
// *apis.BuildError carrying the target, the producer, the build chain and
// the build log. Build errors coming back from nested builds are passed
// through untouched.
package action
