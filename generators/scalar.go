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
	"math/rand/v2"
	"reflect"
	"regexp"
	"time"

	"github.com/go-faker/faker/v4"

	"dirpx.dev/fixture/apis"
)

var (
	agePattern = regexp.MustCompile(`(?i)^age$|_?age_?years$`)

	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

// Age returns the generator for integer age fields.
func Age() *AgeGenerator { return &AgeGenerator{} }

// AgeGenerator produces adult ages between 18 and 90.
type AgeGenerator struct{}

// Priority implements apis.ValueGenerator.
func (*AgeGenerator) Priority() int { return PriorityAge }

// IsMatch implements apis.ValueGenerator.
func (*AgeGenerator) IsMatch(t reflect.Type, name string, _ apis.BuildChain) bool {
	return t != durationType && isInteger(t) && agePattern.MatchString(name)
}

// Generate implements apis.ValueGenerator.
func (*AgeGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return number(t, float64(18+rand.IntN(73))), nil
}

// Text returns the generator for every string target. Named targets get
// their name as a prefix so values are easy to trace back.
func Text() *TextGenerator { return &TextGenerator{} }

// TextGenerator produces short words.
type TextGenerator struct{}

// Priority implements apis.ValueGenerator.
func (*TextGenerator) Priority() int { return PriorityKind }

// IsMatch implements apis.ValueGenerator.
func (*TextGenerator) IsMatch(t reflect.Type, _ string, _ apis.BuildChain) bool {
	return t != nil && t.Kind() == reflect.String
}

// Generate implements apis.ValueGenerator.
func (*TextGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, name string) (any, error) {
	s := faker.Word()
	if name != "" {
		s = name + "-" + s
	}
	return convert(t, s)
}

// Numeric returns the generator for every integer, unsigned and floating
// point kind. Values are small and positive so they fit every width.
func Numeric() *NumericGenerator { return &NumericGenerator{} }

// NumericGenerator produces numbers in [1, 100].
type NumericGenerator struct{}

// Priority implements apis.ValueGenerator.
func (*NumericGenerator) Priority() int { return PriorityKind }

// IsMatch implements apis.ValueGenerator.
func (*NumericGenerator) IsMatch(t reflect.Type, _ string, _ apis.BuildChain) bool {
	if t == durationType {
		return false
	}
	return isInteger(t) || isFloat(t)
}

// Generate implements apis.ValueGenerator.
func (*NumericGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	if isFloat(t) {
		return number(t, float64(1+rand.IntN(9900))/100), nil
	}
	return number(t, float64(1+rand.IntN(100))), nil
}

// Bool returns the generator for bool targets.
func Bool() *BoolGenerator { return &BoolGenerator{} }

// BoolGenerator produces random booleans.
type BoolGenerator struct{}

// Priority implements apis.ValueGenerator.
func (*BoolGenerator) Priority() int { return PriorityKind }

// IsMatch implements apis.ValueGenerator.
func (*BoolGenerator) IsMatch(t reflect.Type, _ string, _ apis.BuildChain) bool {
	return t != nil && t.Kind() == reflect.Bool
}

// Generate implements apis.ValueGenerator.
func (*BoolGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, rand.IntN(2) == 1)
}

// Time returns the generator for time.Time and time.Duration.
func Time() *TimeGenerator { return &TimeGenerator{} }

// TimeGenerator produces UTC times within the last year, truncated to the
// second, and durations below one hour.
type TimeGenerator struct{}

// Priority implements apis.ValueGenerator.
func (*TimeGenerator) Priority() int { return PriorityKind }

// IsMatch implements apis.ValueGenerator.
func (*TimeGenerator) IsMatch(t reflect.Type, _ string, _ apis.BuildChain) bool {
	return t == timeType || t == durationType
}

// Generate implements apis.ValueGenerator.
func (*TimeGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	if t == durationType {
		return rand.N(time.Hour), nil
	}
	ago := rand.N(365 * 24 * time.Hour)
	return time.Now().UTC().Add(-ago).Truncate(time.Second), nil
}

// number returns n as a value of the numeric type t. Generated values are
// small enough for every integer kind.
func number(t reflect.Type, n float64) any {
	v := reflect.New(t).Elem()
	switch {
	case v.CanInt():
		v.SetInt(int64(n))
	case v.CanUint():
		v.SetUint(uint64(n))
	default:
		v.SetFloat(n)
	}
	return v.Interface()
}

func isInteger(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(t reflect.Type) bool {
	return t != nil && (t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64)
}
