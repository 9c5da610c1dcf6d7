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

package chain_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/chain"
)

type company struct{ Name string }

type person struct{ Name string }

func TestChain_EmptyState(t *testing.T) {
	t.Parallel()

	c := chain.New()

	assert.Equal(t, 0, c.Count())
	assert.Nil(t, c.Last())
	assert.Nil(t, c.First())
	assert.Nil(t, c.Pop())
	assert.Empty(t, c.Items())
}

func TestChain_StackDiscipline(t *testing.T) {
	t.Parallel()

	c := chain.New()
	root := &company{Name: "root"}
	child := &person{Name: "child"}

	c.Push(root)
	c.Push(child)

	require.Equal(t, 2, c.Count())
	assert.Same(t, child, c.Last())
	assert.Same(t, root, c.First())

	assert.Same(t, child, c.Pop())
	assert.Same(t, root, c.Last())
	assert.Same(t, root, c.Pop())
	assert.Equal(t, 0, c.Count())
}

func TestChain_ItemsIsSnapshot(t *testing.T) {
	t.Parallel()

	c := chain.New()
	c.Push("a")
	c.Push("b")

	items := c.Items()
	require.Equal(t, []any{"a", "b"}, items)

	items[0] = "mutated"
	c.Push("c")

	assert.Equal(t, []any{"a", "b", "c"}, c.Items())
}

func TestChain_FindExactType(t *testing.T) {
	t.Parallel()

	c := chain.New()
	first := &person{Name: "first"}
	second := &person{Name: "second"}
	c.Push(first)
	c.Push(&company{})
	c.Push(second)

	got, ok := c.Find(reflect.TypeOf(&person{}))
	require.True(t, ok)
	assert.Same(t, second, got, "most recent instance wins")

	// value type and pointer type are distinct
	_, ok = c.Find(reflect.TypeOf(person{}))
	assert.False(t, ok)

	// interfaces never match
	_, ok = c.Find(reflect.TypeOf((*fmt.Stringer)(nil)).Elem())
	assert.False(t, ok)

	_, ok = c.Find(nil)
	assert.False(t, ok)

	assert.True(t, c.Contains(reflect.TypeOf(&company{})))
	assert.False(t, c.Contains(reflect.TypeOf("")))
}

func TestChain_NilEntriesAreSkipped(t *testing.T) {
	t.Parallel()

	var c chain.Chain
	c.Push(nil)

	assert.Equal(t, 1, c.Count())
	assert.False(t, c.Contains(reflect.TypeOf("")))
	assert.Nil(t, c.Pop())
}
