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

import "reflect"

// BuildLog records what happened during a build. Its transcript is embedded
// in build failures.
type BuildLog interface {
	// CreatingType records that producer is about to create t.
	CreatingType(t reflect.Type, producer reflect.Type, context any)
	// CreatingValue records that producer is about to produce a value of t.
	CreatingValue(t reflect.Type, producer reflect.Type, context any)
	// PopulatingInstance records that instance is being populated.
	PopulatingInstance(instance any)
	// CircularReferenceDetected records that an existing t was reused.
	CircularReferenceDetected(t reflect.Type)
	// IgnoringProperty records a field skipped by an ignore rule.
	IgnoringProperty(target BuildTarget)
	// MappingType records a type mapping applied before resolution.
	MappingType(from, to reflect.Type)
	// MaxDepthReached records that target was left at its zero value.
	MaxDepthReached(target BuildTarget, depth int)
	// BuildFailure records a failed build.
	BuildFailure(err error)
	// Output returns the transcript recorded so far.
	Output() string
}
