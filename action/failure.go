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

package action

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"dirpx.dev/fixture/apis"
)

var (
	// ErrProducerPanic wraps the value recovered from a panicking producer.
	ErrProducerPanic = errors.New("fixture(action): producer panicked")
)

// chainDumper renders build chain entries one level deep. Nested values
// are summarized so a failure message stays readable for large graphs.
var chainDumper = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                1,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// produce runs fn and converts any error or panic into a *apis.BuildError
// attributed to producer. Build errors raised by nested builds are returned
// unchanged so the innermost diagnostic context survives.
func produce(
	strategy apis.ExecuteStrategy,
	target apis.BuildTarget,
	kind apis.ProducerKind,
	producer any,
	fn func() (any, error),
) (value any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			value = nil
			err = fail(strategy, target, kind, producer, fmt.Errorf("%w: %v", ErrProducerPanic, rec))
		}
	}()

	value, err = fn()
	if err != nil {
		return nil, fail(strategy, target, kind, producer, err)
	}
	return value, nil
}

// Wrap attributes cause to target without a producer, for failures raised
// by the execute strategy itself such as a target no action can build.
func Wrap(strategy apis.ExecuteStrategy, target apis.BuildTarget, cause error) error {
	if strategy == nil {
		return cause
	}
	return fail(strategy, target, apis.KindNone, nil, cause)
}

// fail wraps cause unless it already is, or wraps, a build error.
func fail(strategy apis.ExecuteStrategy, target apis.BuildTarget, kind apis.ProducerKind, producer any, cause error) error {
	var be *apis.BuildError
	if errors.As(cause, &be) {
		return cause
	}

	log := strategy.Log()
	failure := &apis.BuildError{
		Target:   target,
		Kind:     kind,
		Producer: reflect.TypeOf(producer),
		Chain:    describeChain(strategy.BuildChain()),
		Err:      cause,
	}
	if log != nil {
		failure.Log = log.Output()
		log.BuildFailure(failure)
	}
	return failure
}

// describeChain renders the chain root first, one numbered entry per line.
func describeChain(chain apis.BuildChain) string {
	if chain == nil || chain.Count() == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range chain.Items() {
		b.WriteString("  [")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("] ")
		b.WriteString(strings.TrimSpace(chainDumper.Sdump(item)))
		b.WriteString("\n")
	}
	return b.String()
}

// logContext returns the immediately enclosing instance, if any.
func logContext(chain apis.BuildChain) any {
	if chain == nil {
		return nil
	}
	return chain.Last()
}
