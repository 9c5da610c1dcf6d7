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

package resolver_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/action"
	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/capability"
	"dirpx.dev/fixture/chain"
	"dirpx.dev/fixture/resolver"
)

// stage is a build action that matches a fixed set of types.
type stage struct {
	name     string
	priority int
	types    []reflect.Type
	populate bool
}

func (s *stage) Priority() int { return s.priority }

func (s *stage) IsMatch(cfg apis.BuildConfiguration, chain apis.BuildChain, target apis.BuildTarget) (bool, error) {
	c, err := s.GetBuildCapability(cfg, chain, target)
	return c != nil, err
}

func (s *stage) GetBuildCapability(_ apis.BuildConfiguration, _ apis.BuildChain, target apis.BuildTarget) (apis.BuildCapability, error) {
	for _, t := range s.types {
		if t == target.Type {
			return capability.FromTypeCreator(s, creatorStub{}, true, s.populate)
		}
	}
	return nil, nil
}

func (s *stage) Build(apis.ExecuteStrategy, apis.BuildTarget, ...any) (any, error) { return s.name, nil }
func (s *stage) Populate(_ apis.ExecuteStrategy, instance any) (any, error)       { return instance, nil }

type creatorStub struct{ apis.TypeCreator }

func (creatorStub) AutoPopulate() bool          { return true }
func (creatorStub) AutoDetectConstructor() bool { return false }

type emptyConfig struct{ apis.BuildConfiguration }

func (emptyConfig) CreationRules() []apis.CreationRule     { return nil }
func (emptyConfig) ValueGenerators() []apis.ValueGenerator { return nil }
func (emptyConfig) TypeCreators() []apis.TypeCreator       { return nil }

var (
	intType    = reflect.TypeOf(0)
	stringType = reflect.TypeOf("")
)

func TestNew_OrdersByPriorityStable(t *testing.T) {
	t.Parallel()

	a := &stage{name: "a", priority: 1}
	b := &stage{name: "b", priority: 3}
	c := &stage{name: "c", priority: 1}
	d := &stage{name: "d", priority: 2}

	r := resolver.New(a, nil, b, c, d)
	assert.Equal(t, []apis.BuildAction{b, d, a, c}, r.Actions())

	// Actions returns a copy.
	got := r.Actions()
	got[0] = nil
	assert.Same(t, b, r.Actions()[0])
}

func TestResolve_FirstMatchInPriorityOrder(t *testing.T) {
	t.Parallel()

	low := &stage{name: "low", priority: 10, types: []reflect.Type{intType, stringType}}
	high := &stage{name: "high", priority: 20, types: []reflect.Type{intType}}
	r := resolver.New(low, high)

	act, c, err := r.Resolve(emptyConfig{}, chain.New(), apis.TypeTarget(intType))
	require.NoError(t, err)
	assert.Same(t, high, act)
	assert.NotNil(t, c)

	act, _, err = r.Resolve(emptyConfig{}, chain.New(), apis.TypeTarget(stringType))
	require.NoError(t, err)
	assert.Same(t, low, act)
}

func TestResolve_NothingMatches(t *testing.T) {
	t.Parallel()

	r := resolver.New(&stage{priority: 1})
	act, c, err := r.Resolve(emptyConfig{}, chain.New(), apis.TypeTarget(intType))
	require.NoError(t, err)
	assert.Nil(t, act)
	assert.Nil(t, c)

	m, err := r.Match(emptyConfig{}, chain.New(), apis.TypeTarget(intType))
	require.NoError(t, err)
	assert.Same(t, apis.NoMatch(), m)
	assert.False(t, m.IsMatch)
}

func TestMatch_ReflectsCapability(t *testing.T) {
	t.Parallel()

	r := resolver.New(&stage{priority: 1, types: []reflect.Type{intType}, populate: true})
	m, err := r.Match(emptyConfig{}, chain.New(), apis.TypeTarget(intType))
	require.NoError(t, err)
	assert.True(t, m.IsMatch)
	assert.True(t, m.SupportsCreate)
	assert.True(t, m.SupportsPopulate)
	assert.True(t, m.AutoPopulate)
	assert.False(t, m.RequiresActivator)
}

func TestResolvePopulate_SkipsCircularReference(t *testing.T) {
	t.Parallel()

	populator := &stage{name: "populator", priority: 1, types: []reflect.Type{stringType}, populate: true}
	r := resolver.New(action.NewCircularReference(), populator)

	c := chain.New()
	c.Push("outer")

	act, _, err := r.Resolve(emptyConfig{}, c, apis.TypeTarget(stringType))
	require.NoError(t, err)
	assert.IsType(t, &action.CircularReference{}, act)

	act, capab, err := r.ResolvePopulate(emptyConfig{}, c, apis.TypeTarget(stringType))
	require.NoError(t, err)
	assert.Same(t, populator, act)
	assert.True(t, capab.SupportsPopulate())
}

func TestResolve_RequiresArguments(t *testing.T) {
	t.Parallel()

	r := resolver.New(&stage{priority: 1})
	_, _, err := r.Resolve(nil, chain.New(), apis.TypeTarget(intType))
	require.ErrorIs(t, err, apis.ErrInvalidArgument)
	_, _, err = r.Resolve(emptyConfig{}, nil, apis.TypeTarget(intType))
	require.ErrorIs(t, err, apis.ErrInvalidArgument)
	_, _, err = r.ResolvePopulate(emptyConfig{}, chain.New(), apis.BuildTarget{})
	require.ErrorIs(t, err, apis.ErrInvalidArgument)
	_, err = r.Match(emptyConfig{}, chain.New(), apis.BuildTarget{})
	require.ErrorIs(t, err, apis.ErrInvalidArgument)
}

func TestResolve_DefaultPipeline(t *testing.T) {
	t.Parallel()

	r := resolver.New(
		action.NewTypeCreator(),
		action.NewValueGenerator(),
		action.NewCreationRule(),
		action.NewCircularReference(),
	)
	got := r.Actions()
	require.Len(t, got, 4)
	assert.IsType(t, &action.CircularReference{}, got[0])
	assert.IsType(t, &action.CreationRule{}, got[1])
	assert.IsType(t, &action.ValueGenerator{}, got[2])
	assert.IsType(t, &action.TypeCreator{}, got[3])
}
