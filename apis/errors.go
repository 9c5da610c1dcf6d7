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

package apis

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	uref "dirpx.dev/fixture/utils/reflect"
)

var (
	// ErrInvalidArgument is matched by every ArgumentError.
	ErrInvalidArgument = errors.New("fixture: invalid argument")
	// ErrNoBuildAction is returned when no build action can create a target.
	ErrNoBuildAction = errors.New("fixture: no build action can create the target")
)

// ArgumentError reports a required argument that was nil.
type ArgumentError struct {
	// Name is the name of the missing argument, e.g. "buildChain".
	Name string
}

// NilArgument returns an ArgumentError for name.
func NilArgument(name string) error {
	return &ArgumentError{Name: name}
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	// Example: fixture: argument "buildChain" must not be nil
	return "fixture: argument " + strconv.Quote(e.Name) + " must not be nil"
}

// Is makes errors.Is(err, ErrInvalidArgument) true.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotSupportedError reports an operation a producer kind never supports,
// such as populating through a value generator.
type NotSupportedError struct {
	// Op is the rejected operation.
	Op string
	// Kind is the producer kind that rejected it.
	Kind ProducerKind
	// Producer is the producer type, when known.
	Producer reflect.Type
}

// Error implements the error interface.
func (e *NotSupportedError) Error() string {
	var b strings.Builder
	b.WriteString("fixture: ")
	b.WriteString(e.Op)
	b.WriteString(" is not supported by ")
	b.WriteString(e.Kind.String())
	if e.Producer != nil {
		b.WriteString(" ")
		b.WriteString(e.Producer.String())
	}
	return b.String()
}

// Is makes errors.Is(err, errors.ErrUnsupported) true.
func (e *NotSupportedError) Is(target error) bool {
	return target == errors.ErrUnsupported
}

// BuildError is the diagnostic failure raised when a producer fails to
// create or populate a value.
type BuildError struct {
	// Target is the request that failed.
	Target BuildTarget
	// Kind is the kind of producer that failed.
	Kind ProducerKind
	// Producer is the producer type; nil when no producer was found.
	Producer reflect.Type
	// Chain is a rendering of the build chain at failure time.
	Chain string
	// Log is the build log transcript at failure time.
	Log string
	// Err is the original cause.
	Err error
}

// Error renders target type, producer, cause type, cause message, build
// chain and build log, in that order.
func (e *BuildError) Error() string {
	var b strings.Builder

	b.WriteString("fixture: failed to create ")
	b.WriteString(e.Target.Kind.String())
	b.WriteString(" of type ")
	b.WriteString(uref.FullName(e.Target.Type))
	if e.Target.Name != "" {
		b.WriteString(" with reference name ")
		b.WriteString(strconv.Quote(e.Target.Name))
	}
	if e.Producer != nil {
		b.WriteString(" using ")
		b.WriteString(e.Kind.String())
		b.WriteString(" ")
		b.WriteString(uref.FullName(e.Producer))
	}
	b.WriteString(".\n")

	if e.Err != nil {
		b.WriteString(uref.FullName(reflect.TypeOf(e.Err)))
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
		b.WriteString("\n")
	}

	if e.Chain != "" {
		b.WriteString("\nBuild chain:\n")
		b.WriteString(e.Chain)
		if !strings.HasSuffix(e.Chain, "\n") {
			b.WriteString("\n")
		}
	}

	b.WriteString("\nAt the time of the failure, the build log was:\n\n")
	b.WriteString(e.Log)
	return b.String()
}

// Unwrap returns the original cause.
func (e *BuildError) Unwrap() error { return e.Err }
