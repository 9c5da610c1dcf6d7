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

package fixture

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/builder"
	"dirpx.dev/fixture/buildlog"
	"dirpx.dev/fixture/config"
)

// init initializes the global state.
func init() {
	cfg, err := config.DefaultConfig()
	if err != nil {
		panic(err)
	}
	b := builder.New()
	// Store the initial state atomically.
	st.Store(&state{cfg: cfg, res: b.BuildResolver(cfg), bld: b})
}

var (
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("fixture: builder returned nil resolver")
	// ErrUnexpectedType is returned when a build produced a value that is
	// not of the requested type.
	ErrUnexpectedType = errors.New("fixture: built value has unexpected type")
)

// Create builds a populated value of type T using the global state. args
// are explicit arguments for T's registered constructor.
func Create[T any](args ...any) (T, error) {
	var zero T
	v, err := CreateType(reflect.TypeFor[T](), args...)
	if err != nil || v == nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %s, got %T", ErrUnexpectedType, reflect.TypeFor[T](), v)
	}
	return out, nil
}

// MustCreate is like Create but panics on error. It is meant for tests.
func MustCreate[T any](args ...any) T {
	v, err := Create[T](args...)
	if err != nil {
		panic(err)
	}
	return v
}

// CreateType builds a populated value of type t using the global state.
func CreateType(t reflect.Type, args ...any) (any, error) {
	if t == nil {
		return nil, apis.NilArgument("type")
	}
	s, err := newStrategy()
	if err != nil {
		return nil, err
	}
	return s.Build(apis.TypeTarget(t), args...)
}

// Populate fills the zero-valued exported fields of v, typically a pointer
// to a partially initialized struct, and returns it.
func Populate[T any](v T) (T, error) {
	var zero T
	if any(v) == nil {
		return zero, apis.NilArgument("instance")
	}
	s, err := newStrategy()
	if err != nil {
		return zero, err
	}
	out, err := s.Populate(v)
	if err != nil {
		return zero, err
	}
	res, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedType, v, out)
	}
	return res, nil
}

// newStrategy creates a strategy for one build from the current snapshot.
func newStrategy() (apis.ExecuteStrategy, error) {
	s := st.Load()
	return s.bld.BuildStrategy(s.cfg, s.res, buildlog.New(buildlog.WithLogger(s.logger)))
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged. The resolver
// is rebuilt unless it is pinned.
func SetAll(cfg apis.BuildConfiguration, bld apis.Builder, logger *slog.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	next := *old

	if cfg != nil {
		next.cfg = cfg
	}
	if bld != nil {
		next.bld = bld
	}
	if logger != nil {
		next.logger = logger
	}
	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg)
	}

	publish(&next)
}

// Config returns the global configuration.
func Config() apis.BuildConfiguration {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the resolver
// unless it is pinned. A nil cfg is ignored.
func SetConfig(cfg apis.BuildConfiguration) {
	if cfg == nil {
		return
	}
	SetAll(cfg, nil, nil)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds the resolver unless
// it is pinned. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	SetAll(nil, b, nil)
}

// Logger returns the logger build events are forwarded to, or nil.
func Logger() *slog.Logger {
	return st.Load().logger
}

// SetLogger forwards the events of every later build to l. A nil l is
// ignored; pass a logger with a discarding handler to silence forwarding.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	SetAll(nil, nil, l)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global resolver to res and pins it. A nil res is
// ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.res, next.pres = res, true
	publish(&next)
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets later configuration or builder changes rebuild the
// resolver again. The resolver is rebuilt immediately.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.res, next.pres = next.bld.BuildResolver(next.cfg), false
	publish(&next)
}

// publish stores s after checking it is usable. It must be called with
// buildMu held.
func publish(s *state) {
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.BuildConfiguration
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// logger receives forwarded build events; nil disables forwarding.
	logger *slog.Logger
	// pres indicates whether the res is pinned.
	pres bool
}
