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

package builder

import (
	"dirpx.dev/fixture/action"
	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/resolver"
	"dirpx.dev/fixture/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildResolver builds and returns the default action pipeline:
// circular references, creation rules, value generators and type creators,
// in that order. The configuration is read per build, so one resolver
// serves every configuration.
func (b *builder) BuildResolver(_ apis.BuildConfiguration) apis.Resolver {
	return resolver.New(
		action.NewCircularReference(),
		action.NewCreationRule(),
		action.NewValueGenerator(),
		action.NewTypeCreator(),
	)
}

// BuildStrategy builds a strategy with a fresh chain for one top-level
// build. A nil log is replaced by a new build log.
func (b *builder) BuildStrategy(cfg apis.BuildConfiguration, res apis.Resolver, log apis.BuildLog) (apis.ExecuteStrategy, error) {
	s, err := strategy.New(cfg, res, log)
	if err != nil {
		return nil, err
	}
	return s, nil
}
