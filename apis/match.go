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

// MatchResult is a plain summary of what the pipeline can do for a target.
// The zero value means "no capability".
type MatchResult struct {
	IsMatch               bool
	SupportsCreate        bool
	SupportsPopulate      bool
	AutoPopulate          bool
	AutoDetectConstructor bool
	// RequiresActivator reports that the value is instantiated reflectively
	// with constructor detection rather than produced directly.
	RequiresActivator bool
}

// noMatch is shared by every "no match" answer.
var noMatch = &MatchResult{}

// NoMatch returns the shared "no match" result. Callers must not modify it.
func NoMatch() *MatchResult {
	return noMatch
}

// MatchFromCapability summarizes c, returning NoMatch for nil.
func MatchFromCapability(c BuildCapability) *MatchResult {
	if c == nil {
		return NoMatch()
	}
	return &MatchResult{
		IsMatch:               true,
		SupportsCreate:        c.SupportsCreate(),
		SupportsPopulate:      c.SupportsPopulate(),
		AutoPopulate:          c.AutoPopulate(),
		AutoDetectConstructor: c.AutoDetectConstructor(),
		RequiresActivator:     c.AutoDetectConstructor(),
	}
}
