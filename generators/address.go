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

	"github.com/go-faker/faker/v4"

	"dirpx.dev/fixture/apis"
)

var (
	streetPattern   = regexp.MustCompile(`(?i)^(street|address|address_?line\d?|line\d)$`)
	cityPattern     = regexp.MustCompile(`(?i)^(city|town)$`)
	statePattern    = regexp.MustCompile(`(?i)^(state|region|province)$`)
	postcodePattern = regexp.MustCompile(`(?i)^(zip|zip_?code|post_?code|postal_?code)$`)
)

// Address returns the generator for postal address parts: street, city,
// state and postcode.
func Address() *AddressGenerator {
	return &AddressGenerator{}
}

// AddressGenerator produces the part of a real-looking postal address the
// reference name asks for.
type AddressGenerator struct{}

// Priority implements apis.ValueGenerator.
func (*AddressGenerator) Priority() int { return PriorityContact }

// IsMatch implements apis.ValueGenerator.
func (*AddressGenerator) IsMatch(t reflect.Type, name string, _ apis.BuildChain) bool {
	if t == nil || t.Kind() != reflect.String {
		return false
	}
	return addressPart(name) != nil
}

// Generate implements apis.ValueGenerator.
func (*AddressGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, name string) (any, error) {
	part := addressPart(name)
	if part == nil {
		return convert(t, faker.GetRealAddress().Address)
	}
	return convert(t, part(faker.GetRealAddress()))
}

func addressPart(name string) func(faker.RealAddress) string {
	switch {
	case streetPattern.MatchString(name):
		return func(a faker.RealAddress) string { return a.Address }
	case cityPattern.MatchString(name):
		return func(a faker.RealAddress) string { return a.City }
	case statePattern.MatchString(name):
		return func(a faker.RealAddress) string { return a.State }
	case postcodePattern.MatchString(name):
		return func(a faker.RealAddress) string { return a.PostalCode }
	}
	return nil
}
