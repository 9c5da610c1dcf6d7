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

package action_test

import (
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/chain"
)

// ---------------------- Configuration ----------------------

type fakeConfig struct {
	rules      []apis.CreationRule
	generators []apis.ValueGenerator
	creators   []apis.TypeCreator
}

func (c *fakeConfig) CreationRules() []apis.CreationRule     { return c.rules }
func (c *fakeConfig) ValueGenerators() []apis.ValueGenerator { return c.generators }
func (c *fakeConfig) TypeCreators() []apis.TypeCreator       { return c.creators }
func (c *fakeConfig) IgnoreRules() []apis.IgnoreRule         { return nil }
func (c *fakeConfig) Settings() apis.Settings                { return apis.Settings{MaxDepth: 8, CollectionSize: 3} }

func (c *fakeConfig) TypeMapping(reflect.Type) (reflect.Type, bool)     { return nil, false }
func (c *fakeConfig) Constructor(reflect.Type) (apis.Constructor, bool) { return nil, false }

// ---------------------- Log ----------------------

type fakeLog struct {
	lines    []string
	failures []error
}

func (l *fakeLog) add(format string, args ...any) { l.lines = append(l.lines, fmt.Sprintf(format, args...)) }

func (l *fakeLog) CreatingType(t, p reflect.Type, _ any)  { l.add("creating type %v with %v", t, p) }
func (l *fakeLog) CreatingValue(t, p reflect.Type, _ any) { l.add("creating value %v with %v", t, p) }
func (l *fakeLog) PopulatingInstance(instance any)        { l.add("populating %T", instance) }
func (l *fakeLog) CircularReferenceDetected(t reflect.Type) {
	l.add("circular reference %v", t)
}
func (l *fakeLog) IgnoringProperty(target apis.BuildTarget)        { l.add("ignoring %v", target) }
func (l *fakeLog) MappingType(from, to reflect.Type)               { l.add("mapping %v to %v", from, to) }
func (l *fakeLog) MaxDepthReached(target apis.BuildTarget, d int) { l.add("max depth %d at %v", d, target) }
func (l *fakeLog) BuildFailure(err error)                          { l.failures = append(l.failures, err) }
func (l *fakeLog) Output() string                                  { return strings.Join(l.lines, "\n") }

// ---------------------- Strategy ----------------------

type fakeStrategy struct {
	cfg   apis.BuildConfiguration
	chain apis.BuildChain
	log   *fakeLog
}

func newStrategy(cfg *fakeConfig) *fakeStrategy {
	return &fakeStrategy{cfg: cfg, chain: chain.New(), log: &fakeLog{}}
}

func (s *fakeStrategy) Configuration() apis.BuildConfiguration { return s.cfg }
func (s *fakeStrategy) BuildChain() apis.BuildChain            { return s.chain }
func (s *fakeStrategy) Log() apis.BuildLog                     { return s.log }

func (s *fakeStrategy) Build(apis.BuildTarget, ...any) (any, error) { return nil, nil }
func (s *fakeStrategy) Populate(instance any) (any, error)         { return instance, nil }

// ---------------------- Producers ----------------------

type rule struct {
	priority int
	typ      reflect.Type
	name     string
	create   func() (any, error)
}

func (r *rule) Priority() int { return r.priority }

func (r *rule) IsMatch(t reflect.Type, name string) bool {
	return t == r.typ && (r.name == "" || r.name == name)
}

func (r *rule) Create(apis.ExecuteStrategy, reflect.Type, string) (any, error) { return r.create() }

type generator struct {
	priority int
	typ      reflect.Type
	value    any
	err      error
}

func (g *generator) Priority() int { return g.priority }

func (g *generator) IsMatch(t reflect.Type, _ string, _ apis.BuildChain) bool { return t == g.typ }

func (g *generator) Generate(apis.ExecuteStrategy, reflect.Type, string) (any, error) {
	return g.value, g.err
}

type creator struct {
	priority    int
	typ         reflect.Type
	populatable bool
	created     [][]any
	populated   []any
	populateErr error
}

func (c *creator) Priority() int               { return c.priority }
func (c *creator) AutoPopulate() bool          { return c.populatable }
func (c *creator) AutoDetectConstructor() bool { return true }

func (c *creator) CanCreate(_ apis.BuildConfiguration, _ apis.BuildChain, t reflect.Type, _ string) bool {
	return t == c.typ
}

func (c *creator) CanPopulate(_ apis.BuildConfiguration, _ apis.BuildChain, t reflect.Type, _ string) bool {
	return c.populatable && (t == c.typ || t == reflect.PointerTo(c.typ))
}

func (c *creator) Create(_ apis.ExecuteStrategy, t reflect.Type, _ string, args ...any) (any, error) {
	c.created = append(c.created, args)
	return reflect.New(t).Interface(), nil
}

func (c *creator) Populate(_ apis.ExecuteStrategy, instance any) (any, error) {
	c.populated = append(c.populated, instance)
	return instance, c.populateErr
}
