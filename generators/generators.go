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

// Package generators provides the default value generators.
//
// Name-specific generators match string targets whose reference name looks
// like what they produce (an "Email" field gets an e-mail address) and rank
// above the kind-wide generators that cover every remaining scalar.
// Realistic values come from github.com/go-faker/faker/v4.
//
// Generated strings are converted to the target type, so named string
// types such as `type Email string` are served as well.
package generators

import (
	"reflect"
	"regexp"

	"dirpx.dev/fixture/apis"
	uref "dirpx.dev/fixture/utils/reflect"
)

const (
	// PriorityEmail and the constants below rank the name-specific
	// generators. More specific patterns rank higher.
	PriorityEmail    = 2500
	PriorityPersonal = 2400
	PriorityFullName = 2300
	PriorityContact  = 2200
	PriorityNetwork  = 2100
	PriorityID       = 2000
	PriorityAge      = 2000

	// PriorityKind ranks the generators covering a whole kind.
	PriorityKind = 1000
)

// Default returns the default generators in registration order.
func Default() []apis.ValueGenerator {
	return []apis.ValueGenerator{
		Email(),
		FirstName(),
		LastName(),
		FullName(),
		Address(),
		Phone(),
		URL(),
		Domain(),
		IPAddress(),
		UUID(),
		Age(),
		Text(),
		Numeric(),
		Bool(),
		Time(),
	}
}

// namedString matches string-kinded targets by reference name.
type namedString struct {
	priority int
	pattern  *regexp.Regexp
}

func (g *namedString) Priority() int { return g.priority }

func (g *namedString) IsMatch(t reflect.Type, name string, _ apis.BuildChain) bool {
	return t != nil && t.Kind() == reflect.String && name != "" && g.pattern.MatchString(name)
}

// convert returns v as t. t must share v's kind.
func convert(t reflect.Type, v any) (any, error) {
	return uref.Convert(v, t)
}
