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

package generators_test

import (
	"net"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/generators"
	"dirpx.dev/fixture/registry"
)

type EmailAddress string

var (
	stringType = reflect.TypeFor[string]()
	uuidRe     = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// pick returns the generator the ValueGenerator stage would select.
func pick(t *testing.T, typ reflect.Type, name string) apis.ValueGenerator {
	t.Helper()
	g, ok := registry.Select(generators.Default(), func(g apis.ValueGenerator) bool {
		return g.IsMatch(typ, name, nil)
	})
	require.True(t, ok, "no generator for %v %q", typ, name)
	return g
}

func generate(t *testing.T, typ reflect.Type, name string) any {
	t.Helper()
	v, err := pick(t, typ, name).Generate(nil, typ, name)
	require.NoError(t, err)
	require.IsType(t, reflect.Zero(typ).Interface(), v)
	return v
}

func TestDefault_SelectsByName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		typ  reflect.Type
		want any
	}{
		{"Email", stringType, &generators.EmailGenerator{}},
		{"contact_email", stringType, &generators.EmailGenerator{}},
		{"FirstName", stringType, &generators.FirstNameGenerator{}},
		{"surname", stringType, &generators.LastNameGenerator{}},
		{"Name", stringType, &generators.FullNameGenerator{}},
		{"City", stringType, &generators.AddressGenerator{}},
		{"ZipCode", stringType, &generators.AddressGenerator{}},
		{"Phone", stringType, &generators.PhoneGenerator{}},
		{"Website", stringType, &generators.URLGenerator{}},
		{"Domain", stringType, &generators.DomainGenerator{}},
		{"IPAddress", stringType, &generators.IPAddressGenerator{}},
		{"ID", stringType, &generators.UUIDGenerator{}},
		{"OrderID", stringType, &generators.UUIDGenerator{}},
		{"Paid", reflect.TypeFor[bool](), &generators.BoolGenerator{}},
		{"Age", reflect.TypeFor[int](), &generators.AgeGenerator{}},
		{"ID", reflect.TypeFor[int64](), &generators.NumericGenerator{}},
		{"Title", stringType, &generators.TextGenerator{}},
		{"", stringType, &generators.TextGenerator{}},
		{"CreatedAt", reflect.TypeFor[time.Time](), &generators.TimeGenerator{}},
		{"Timeout", reflect.TypeFor[time.Duration](), &generators.TimeGenerator{}},
		{"Ratio", reflect.TypeFor[float32](), &generators.NumericGenerator{}},
	}

	for _, tc := range cases {
		t.Run(tc.name+"/"+tc.typ.String(), func(t *testing.T) {
			assert.IsType(t, tc.want, pick(t, tc.typ, tc.name))
		})
	}
}

func TestDefault_NoMatchForComplexKinds(t *testing.T) {
	t.Parallel()

	for _, typ := range []reflect.Type{
		reflect.TypeFor[struct{ A int }](),
		reflect.TypeFor[[]string](),
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[*int](),
		reflect.TypeFor[any](),
	} {
		_, ok := registry.Select(generators.Default(), func(g apis.ValueGenerator) bool {
			return g.IsMatch(typ, "Email", nil)
		})
		assert.False(t, ok, "%v", typ)
	}
}

func TestGenerate_ValuesLookRight(t *testing.T) {
	t.Parallel()

	_, err := mail.ParseAddress(generate(t, stringType, "Email").(string))
	require.NoError(t, err)

	u, err := url.Parse(generate(t, stringType, "URL").(string))
	require.NoError(t, err)
	assert.NotEmpty(t, u.Scheme)

	assert.NotNil(t, net.ParseIP(generate(t, stringType, "IP").(string)))
	assert.Regexp(t, uuidRe, generate(t, stringType, "UUID"))
	assert.Regexp(t, `^Title-\S+$`, generate(t, stringType, "Title"))

	age := generate(t, reflect.TypeFor[uint8](), "Age").(uint8)
	assert.GreaterOrEqual(t, age, uint8(18))
	assert.LessOrEqual(t, age, uint8(90))

	n := generate(t, reflect.TypeFor[int16](), "Count").(int16)
	assert.Positive(t, n)

	ts := generate(t, reflect.TypeFor[time.Time](), "At").(time.Time)
	assert.WithinDuration(t, time.Now(), ts, 366*24*time.Hour)
	assert.Less(t, generate(t, reflect.TypeFor[time.Duration](), "").(time.Duration), time.Hour)
}

func TestGenerate_NamedStringType(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeFor[EmailAddress]()
	v := generate(t, typ, "Email")
	assert.Contains(t, string(v.(EmailAddress)), "@")
}

func TestDefault_PriorityBands(t *testing.T) {
	t.Parallel()

	for _, g := range generators.Default() {
		assert.GreaterOrEqual(t, g.Priority(), generators.PriorityKind, "%T", g)
		assert.LessOrEqual(t, g.Priority(), generators.PriorityEmail, "%T", g)
	}
}

type Ratio float32

func TestAge_SkipsDurations(t *testing.T) {
	t.Parallel()

	durType := reflect.TypeFor[time.Duration]()
	assert.False(t, generators.Age().IsMatch(durType, "Age", nil))
	assert.IsType(t, generators.Time(), pick(t, durType, "Age"))
}

func TestGenerate_NumericKinds(t *testing.T) {
	t.Parallel()

	r := generate(t, reflect.TypeFor[Ratio](), "Share").(Ratio)
	assert.Greater(t, r, Ratio(0))
	assert.Less(t, r, Ratio(100))

	u := generate(t, reflect.TypeFor[uint64](), "Total").(uint64)
	assert.LessOrEqual(t, u, uint64(100))
}
