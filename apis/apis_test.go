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

package apis_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fixture/apis"
)

type Customer struct {
	Email string
	Name  string
}

type Vendor struct {
	Email string
}

func property(t *testing.T, owner reflect.Type, name string) apis.BuildTarget {
	t.Helper()
	f, ok := owner.FieldByName(name)
	require.True(t, ok)
	return apis.PropertyTarget(apis.Property{DeclaringType: owner, Field: f})
}

func TestTargets_Normalize(t *testing.T) {
	t.Parallel()

	customer := reflect.TypeFor[Customer]()
	str := reflect.TypeFor[string]()

	tt := apis.TypeTarget(customer)
	assert.Equal(t, apis.TargetType, tt.Kind)
	assert.Empty(t, tt.Name)
	assert.Equal(t, "type apis_test.Customer", tt.String())

	pt := property(t, customer, "Email")
	assert.Equal(t, apis.TargetProperty, pt.Kind)
	assert.Equal(t, str, pt.Type)
	assert.Equal(t, "Email", pt.Name)
	assert.Equal(t, customer, pt.DeclaringType)
	assert.Equal(t, "property apis_test.Customer.Email (string)", pt.String())

	par := apis.ParameterTarget(apis.Parameter{DeclaringType: customer, Type: str, Name: "email", Position: 2})
	assert.Equal(t, apis.TargetParameter, par.Kind)
	assert.Equal(t, 2, par.Position)
	assert.Equal(t, "parameter apis_test.Customer.email (string)", par.String())

	mapped := pt.WithType(reflect.TypeFor[[]byte]())
	assert.Equal(t, "Email", mapped.Name)
	assert.Equal(t, customer, mapped.DeclaringType)
	assert.Equal(t, reflect.TypeFor[[]byte](), mapped.Type)
	assert.Equal(t, str, pt.Type, "WithType must not modify the receiver")
}

func TestTarget_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, apis.TypeTarget(reflect.TypeFor[int]()).Validate())

	err := apis.BuildTarget{Kind: apis.TargetProperty}.Validate()
	require.ErrorIs(t, err, apis.ErrInvalidArgument)

	var argErr *apis.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "property", argErr.Name)
	assert.Equal(t, "property <nil>", apis.BuildTarget{Kind: apis.TargetProperty}.String())
}

func TestKinds_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "type", apis.TargetType.String())
	assert.Equal(t, "unknown(9)", apis.TargetKind(9).String())
	assert.Equal(t, "no producer", apis.KindNone.String())
	assert.Equal(t, "creation rule", apis.KindCreationRule.String())
	assert.Equal(t, "value generator", apis.KindValueGenerator.String())
	assert.Equal(t, "type creator", apis.KindTypeCreator.String())
	assert.Equal(t, "circular reference", apis.KindCircularReference.String())
}

func TestArgumentError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrapped: %w", apis.NilArgument("buildChain"))
	require.ErrorIs(t, err, apis.ErrInvalidArgument)
	assert.NotErrorIs(t, err, errors.ErrUnsupported)
	assert.Contains(t, err.Error(), `argument "buildChain" must not be nil`)
}

func TestNotSupportedError(t *testing.T) {
	t.Parallel()

	err := &apis.NotSupportedError{Op: "populate", Kind: apis.KindValueGenerator, Producer: reflect.TypeFor[*Vendor]()}
	require.ErrorIs(t, err, errors.ErrUnsupported)
	assert.Equal(t, "fixture: populate is not supported by value generator *apis_test.Vendor", err.Error())

	bare := &apis.NotSupportedError{Op: "create", Kind: apis.KindNone}
	assert.Equal(t, "fixture: create is not supported by no producer", bare.Error())
}

func TestBuildError_Message(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &apis.BuildError{
		Target:   property(t, reflect.TypeFor[Customer](), "Email"),
		Kind:     apis.KindCreationRule,
		Producer: reflect.TypeFor[*Vendor](),
		Chain:    "  [0] Customer{}",
		Log:      "level=DEBUG msg=\"creating value\"\n",
		Err:      cause,
	}
	require.ErrorIs(t, err, cause)

	msg := err.Error()
	order := []string{
		"failed to create property of type string",
		`with reference name "Email"`,
		"using creation rule *dirpx.dev/fixture/apis_test.Vendor",
		"*errors.errorString: boom",
		"Build chain:\n  [0] Customer{}\n",
		"build log was:\n\nlevel=DEBUG",
	}
	last := -1
	for _, part := range order {
		i := strings.Index(msg, part)
		require.GreaterOrEqual(t, i, 0, "missing %q in:\n%s", part, msg)
		assert.Greater(t, i, last, "%q out of order", part)
		last = i
	}

	noProducer := &apis.BuildError{Target: apis.TypeTarget(reflect.TypeFor[complex64]()), Err: apis.ErrNoBuildAction}
	assert.NotContains(t, noProducer.Error(), " using ")
	assert.NotContains(t, noProducer.Error(), "Build chain:")
}

type capabilityStub struct {
	apis.BuildCapability
	populate, autoPopulate, autoDetect bool
}

func (c capabilityStub) SupportsCreate() bool        { return true }
func (c capabilityStub) SupportsPopulate() bool      { return c.populate }
func (c capabilityStub) AutoPopulate() bool          { return c.autoPopulate }
func (c capabilityStub) AutoDetectConstructor() bool { return c.autoDetect }

func TestMatchResult(t *testing.T) {
	t.Parallel()

	assert.Same(t, apis.NoMatch(), apis.NoMatch())
	assert.Equal(t, apis.MatchResult{}, *apis.NoMatch())
	assert.Same(t, apis.NoMatch(), apis.MatchFromCapability(nil))

	got := apis.MatchFromCapability(capabilityStub{populate: true, autoDetect: true})
	assert.Equal(t, apis.MatchResult{
		IsMatch:               true,
		SupportsCreate:        true,
		SupportsPopulate:      true,
		AutoDetectConstructor: true,
		RequiresActivator:     true,
	}, *got)
}

func TestIgnoreRule_Matches(t *testing.T) {
	t.Parallel()

	customer := reflect.TypeFor[Customer]()
	vendor := reflect.TypeFor[Vendor]()
	customerEmail := property(t, customer, "Email")
	vendorEmail := property(t, vendor, "Email")

	cases := []struct {
		name   string
		rule   apis.IgnoreRule
		target apis.BuildTarget
		want   bool
	}{
		{"any owner", apis.IgnoreRule{Name: "Email"}, vendorEmail, true},
		{"other field", apis.IgnoreRule{Name: "Email"}, property(t, customer, "Name"), false},
		{"owner type", apis.IgnoreRule{DeclaringType: customer, Name: "Email"}, customerEmail, true},
		{"other owner type", apis.IgnoreRule{DeclaringType: customer, Name: "Email"}, vendorEmail, false},
		{"owner name", apis.IgnoreRule{DeclaringTypeName: "dirpx.dev/fixture/apis_test.Vendor", Name: "Email"}, vendorEmail, true},
		{"other owner name", apis.IgnoreRule{DeclaringTypeName: "dirpx.dev/fixture/apis_test.Vendor", Name: "Email"}, customerEmail, false},
		{"not a property", apis.IgnoreRule{Name: "Email"}, apis.BuildTarget{Kind: apis.TargetType, Type: customer, Name: "Email"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.Matches(tc.target))
		})
	}
}
