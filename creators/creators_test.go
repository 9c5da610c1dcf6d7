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

package creators_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/builder"
	"dirpx.dev/fixture/config"
	"dirpx.dev/fixture/creators"
)

type point struct {
	X, Y int
	Tag  string
}

type pair struct {
	A, B string
}

func newPair(a, b string) pair { return pair{A: a, B: b} }

func newStrategy(t *testing.T, opts ...config.Option) apis.ExecuteStrategy {
	t.Helper()
	cfg, err := config.DefaultConfig(opts...)
	require.NoError(t, err)
	b := builder.New()
	s, err := b.BuildStrategy(cfg, b.BuildResolver(cfg), nil)
	require.NoError(t, err)
	return s
}

func TestStruct_CanCreate(t *testing.T) {
	t.Parallel()

	c := creators.Struct()
	for typ, want := range map[reflect.Type]bool{
		reflect.TypeFor[point]():   true,
		reflect.TypeFor[*point]():  true,
		reflect.TypeFor[**point](): false,
		reflect.TypeFor[int]():     false,
		reflect.TypeFor[[]point](): false,
	} {
		assert.Equal(t, want, c.CanCreate(nil, nil, typ, ""), "%v", typ)
		assert.Equal(t, want, c.CanPopulate(nil, nil, typ, ""), "%v", typ)
	}
	assert.True(t, c.AutoPopulate())
	assert.True(t, c.AutoDetectConstructor())
}

func TestStruct_CreateAllocatesZero(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)
	c := creators.Struct()

	v, err := c.Create(s, reflect.TypeFor[*point](), "")
	require.NoError(t, err)
	assert.Equal(t, &point{}, v)

	v, err = c.Create(s, reflect.TypeFor[point](), "")
	require.NoError(t, err)
	assert.Equal(t, point{}, v)

	_, err = c.Create(s, reflect.TypeFor[point](), "", 1)
	require.ErrorIs(t, err, creators.ErrNoConstructor)
}

func TestStruct_CreateThroughConstructor(t *testing.T) {
	t.Parallel()

	s := newStrategy(t, config.WithConstructor(newPair))
	c := creators.Struct()

	v, err := c.Create(s, reflect.TypeFor[pair](), "", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, pair{A: "a", B: "b"}, v)

	v, err = c.Create(s, reflect.TypeFor[*pair](), "", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, &pair{A: "a", B: "b"}, v)
}

func TestStruct_CreateRejectsWrongArity(t *testing.T) {
	t.Parallel()

	s := newStrategy(t, config.WithConstructor(newPair))
	c := creators.Struct()

	_, err := c.Create(s, reflect.TypeFor[pair](), "", "a")
	require.ErrorIs(t, err, creators.ErrConstructorArity)
	assert.NotErrorIs(t, err, creators.ErrNoConstructor)

	v, err := c.Create(s, reflect.TypeFor[pair](), "")
	require.NoError(t, err)
	assert.Equal(t, pair{}, v)
}

func TestStruct_PopulateFillsZeroFields(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)
	p := &point{Y: -1}

	v, err := creators.Struct().Populate(s, p)
	require.NoError(t, err)
	assert.Same(t, p, v)
	assert.Positive(t, p.X)
	assert.Equal(t, -1, p.Y)
	assert.NotEmpty(t, p.Tag)
}

func TestPointer(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)
	c := creators.Pointer()

	assert.True(t, c.CanCreate(nil, nil, reflect.TypeFor[*string](), ""))
	assert.True(t, c.CanCreate(nil, nil, reflect.TypeFor[**point](), ""))
	assert.False(t, c.CanCreate(nil, nil, reflect.TypeFor[*point](), ""))

	v, err := c.Create(s, reflect.TypeFor[*string](), "Email")
	require.NoError(t, err)
	assert.Contains(t, *(v.(*string)), "@", "element keeps the reference name")

	v, err = c.Create(s, reflect.TypeFor[**point](), "")
	require.NoError(t, err)
	pp := v.(**point)
	require.NotNil(t, *pp)
	assert.NotEmpty(t, (*pp).Tag)

	_, err = c.Populate(s, v)
	require.ErrorIs(t, err, errors.ErrUnsupported)
}

func TestCollection(t *testing.T) {
	t.Parallel()

	s := newStrategy(t, config.WithCollectionSize(4))
	c := creators.Collection()
	assert.False(t, c.AutoPopulate())

	empty, err := c.Create(s, reflect.TypeFor[[]int](), "")
	require.NoError(t, err)
	assert.Equal(t, []int{}, empty)

	v, err := c.Populate(s, []int{7})
	require.NoError(t, err)
	xs := v.([]int)
	require.Len(t, xs, 5)
	assert.Equal(t, 7, xs[0])

	v, err = c.Populate(s, [3]string{})
	require.NoError(t, err)
	for _, x := range v.([3]string) {
		assert.NotEmpty(t, x)
	}

	v, err = c.Populate(s, map[int]bool(nil))
	require.NoError(t, err)
	assert.NotEmpty(t, v.(map[int]bool))

	m := map[string]point{}
	v, err = c.Populate(s, m)
	require.NoError(t, err)
	assert.NotEmpty(t, m, "non-nil maps are filled in place")
	assert.Equal(t, reflect.ValueOf(m).Pointer(), reflect.ValueOf(v).Pointer())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	got := creators.Default()
	require.Len(t, got, 3)
	assert.IsType(t, &creators.StructCreator{}, got[0])
	assert.IsType(t, &creators.PointerCreator{}, got[1])
	assert.IsType(t, &creators.CollectionCreator{}, got[2])
}
