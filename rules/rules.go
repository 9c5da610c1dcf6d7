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

// Package rules provides ready-made creation rules.
//
// Creation rules run ahead of every generator and creator, so they are the
// way to pin a value for a type or a named field:
//
//	cfg.AddCreationRule(rules.Named[string](10, "^Email$", "fixed@example.com"))
package rules

import (
	"fmt"
	"reflect"
	"regexp"

	"dirpx.dev/fixture/apis"
)

// MatchFunc decides whether a rule applies to (t, name).
type MatchFunc func(t reflect.Type, name string) bool

// CreateFunc produces the value for (t, name).
type CreateFunc func(s apis.ExecuteStrategy, t reflect.Type, name string) (any, error)

// Func returns a rule backed by match and create.
func Func(priority int, match MatchFunc, create CreateFunc) (*FuncRule, error) {
	if match == nil {
		return nil, apis.NilArgument("match")
	}
	if create == nil {
		return nil, apis.NilArgument("create")
	}
	return &FuncRule{priority: priority, match: match, create: create}, nil
}

// FuncRule is a creation rule backed by functions.
type FuncRule struct {
	priority int
	match    MatchFunc
	create   CreateFunc
}

// Ensure FuncRule implements apis.CreationRule.
var _ apis.CreationRule = (*FuncRule)(nil)

// Priority implements apis.CreationRule.
func (r *FuncRule) Priority() int { return r.priority }

// IsMatch implements apis.CreationRule.
func (r *FuncRule) IsMatch(t reflect.Type, name string) bool { return r.match(t, name) }

// Create implements apis.CreationRule.
func (r *FuncRule) Create(s apis.ExecuteStrategy, t reflect.Type, name string) (any, error) {
	return r.create(s, t, name)
}

// Value returns a rule producing v for every request of exactly T.
func Value[T any](priority int, v T) *ValueRule[T] {
	return &ValueRule[T]{priority: priority, value: v}
}

// ValueRule produces a fixed value for one type.
type ValueRule[T any] struct {
	priority int
	value    T
}

// Priority implements apis.CreationRule.
func (r *ValueRule[T]) Priority() int { return r.priority }

// IsMatch implements apis.CreationRule.
func (r *ValueRule[T]) IsMatch(t reflect.Type, _ string) bool { return t == reflect.TypeFor[T]() }

// Create implements apis.CreationRule.
func (r *ValueRule[T]) Create(apis.ExecuteStrategy, reflect.Type, string) (any, error) {
	return r.value, nil
}

// Named returns a rule producing v for requests of exactly T whose
// reference name matches pattern, case-insensitively.
func Named[T any](priority int, pattern string, v T) (*NamedRule[T], error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("fixture(rules): name pattern %q: %w", pattern, err)
	}
	return &NamedRule[T]{ValueRule: ValueRule[T]{priority: priority, value: v}, pattern: re}, nil
}

// NamedRule produces a fixed value for one type and reference name.
type NamedRule[T any] struct {
	ValueRule[T]
	pattern *regexp.Regexp
}

// IsMatch implements apis.CreationRule.
func (r *NamedRule[T]) IsMatch(t reflect.Type, name string) bool {
	return r.ValueRule.IsMatch(t, name) && r.pattern.MatchString(name)
}
