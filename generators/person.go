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

package generators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-faker/faker/v4"

	"dirpx.dev/fixture/apis"
)

var (
	emailPattern     = regexp.MustCompile(`(?i)e_?mail`)
	firstNamePattern = regexp.MustCompile(`(?i)^(first_?name|given_?name|forename)$`)
	lastNamePattern  = regexp.MustCompile(`(?i)^(last_?name|surname|family_?name)$`)
	fullNamePattern  = regexp.MustCompile(`(?i)^(full_?name|display_?name|name|owner|author)$`)
	phonePattern     = regexp.MustCompile(`(?i)(phone|mobile|^tel$|^fax$)`)
)

// Email returns the generator for e-mail address fields.
func Email() *EmailGenerator {
	return &EmailGenerator{namedString{priority: PriorityEmail, pattern: emailPattern}}
}

// EmailGenerator produces e-mail addresses.
type EmailGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *EmailGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, strings.ToLower(faker.Email()))
}

// FirstName returns the generator for given-name fields.
func FirstName() *FirstNameGenerator {
	return &FirstNameGenerator{namedString{priority: PriorityPersonal, pattern: firstNamePattern}}
}

// FirstNameGenerator produces given names.
type FirstNameGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *FirstNameGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, faker.FirstName())
}

// LastName returns the generator for family-name fields.
func LastName() *LastNameGenerator {
	return &LastNameGenerator{namedString{priority: PriorityPersonal, pattern: lastNamePattern}}
}

// LastNameGenerator produces family names.
type LastNameGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *LastNameGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, faker.LastName())
}

// FullName returns the generator for full-name fields.
func FullName() *FullNameGenerator {
	return &FullNameGenerator{namedString{priority: PriorityFullName, pattern: fullNamePattern}}
}

// FullNameGenerator produces "First Last" names.
type FullNameGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *FullNameGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, faker.FirstName()+" "+faker.LastName())
}

// Phone returns the generator for phone number fields.
func Phone() *PhoneGenerator {
	return &PhoneGenerator{namedString{priority: PriorityContact, pattern: phonePattern}}
}

// PhoneGenerator produces phone numbers.
type PhoneGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *PhoneGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, faker.Phonenumber())
}
