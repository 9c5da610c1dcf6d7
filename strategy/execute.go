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

package strategy

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/fixture/action"
	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/buildlog"
	"dirpx.dev/fixture/chain"
	uref "dirpx.dev/fixture/utils/reflect"
)

var (
	// ErrNestingLimit is returned when builds nest far deeper than the
	// chain limit allows, typically a constructor that needs its own type.
	ErrNestingLimit = errors.New("fixture(strategy): nesting limit exceeded")
)

// nestingFactor bounds the number of nested Build calls relative to
// Settings.MaxDepth. Fields, pointers and collection elements each add a
// level without growing the chain.
const nestingFactor = 8

// New constructs a Strategy for one build. A nil log is replaced by a fresh
// buildlog.Log.
func New(cfg apis.BuildConfiguration, res apis.Resolver, log apis.BuildLog) (*Strategy, error) {
	if cfg == nil {
		return nil, apis.NilArgument("buildConfiguration")
	}
	if res == nil {
		return nil, apis.NilArgument("resolver")
	}
	if log == nil {
		log = buildlog.New()
	}
	return &Strategy{cfg: cfg, res: res, log: log, chain: chain.New()}, nil
}

// Strategy implements apis.ExecuteStrategy.
type Strategy struct {
	cfg   apis.BuildConfiguration
	res   apis.Resolver
	log   apis.BuildLog
	chain *chain.Chain
	depth int
}

// Ensure Strategy implements apis.ExecuteStrategy.
var _ apis.ExecuteStrategy = (*Strategy)(nil)

// Configuration implements apis.ExecuteStrategy.
func (s *Strategy) Configuration() apis.BuildConfiguration { return s.cfg }

// BuildChain implements apis.ExecuteStrategy.
func (s *Strategy) BuildChain() apis.BuildChain { return s.chain }

// Log implements apis.ExecuteStrategy.
func (s *Strategy) Log() apis.BuildLog { return s.log }

// Build creates a value for target and populates it when the resolved
// capability asks for it. args are explicit constructor arguments; without
// them, arguments for a registered constructor are built on demand.
func (s *Strategy) Build(target apis.BuildTarget, args ...any) (any, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	if dst, ok := s.cfg.TypeMapping(target.Type); ok {
		s.log.MappingType(target.Type, dst)
		target = target.WithType(dst)
	}

	settings := s.cfg.Settings()
	if settings.MaxDepth > 0 {
		if n := s.chain.Count(); n >= settings.MaxDepth {
			s.log.MaxDepthReached(target, n)
			return uref.Zero(target.Type)
		}
		if s.depth >= settings.MaxDepth*nestingFactor {
			return nil, action.Wrap(s, target, fmt.Errorf("%w: %d nested builds", ErrNestingLimit, s.depth))
		}
	}

	s.depth++
	defer func() { s.depth-- }()

	act, c, err := s.res.Resolve(s.cfg, s.chain, target)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.SupportsCreate() {
		if opaque(target.Type) {
			return uref.Zero(target.Type)
		}
		return nil, action.Wrap(s, target, apis.ErrNoBuildAction)
	}

	if c.AutoDetectConstructor() && len(args) == 0 {
		if ctor, ok := s.cfg.Constructor(target.Type); ok {
			if args, err = s.constructorArgs(ctor); err != nil {
				return nil, err
			}
		}
	}

	instance, err := act.Build(s, target, args...)
	if err != nil || instance == nil {
		return instance, err
	}

	if c.SupportsPopulate() || c.AutoPopulate() {
		return s.populate(c, target, instance)
	}
	return instance, nil
}

// Populate fills an existing instance, typically a pointer to a struct the
// caller has partially initialized, and returns it. Only zero-valued fields
// are set.
func (s *Strategy) Populate(instance any) (any, error) {
	if instance == nil {
		return nil, apis.NilArgument("instance")
	}

	target := apis.TypeTarget(reflect.TypeOf(instance))
	_, c, err := s.res.ResolvePopulate(s.cfg, s.chain, target)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, action.Wrap(s, target, &apis.NotSupportedError{Op: "populate", Kind: apis.KindNone})
	}
	return s.populate(c, target, instance)
}

// populate keeps instance on the chain while its members are built.
func (s *Strategy) populate(c apis.BuildCapability, target apis.BuildTarget, instance any) (any, error) {
	s.chain.Push(instance)
	defer s.chain.Pop()

	if c.SupportsPopulate() {
		return c.Populate(s, instance)
	}

	out, err := PopulateFields(s, instance)
	if err != nil {
		return nil, action.Wrap(s, target, err)
	}
	return out, nil
}

func (s *Strategy) constructorArgs(ctor apis.Constructor) ([]any, error) {
	params := ctor.Parameters()
	args := make([]any, len(params))
	for i, p := range params {
		v, err := s.Build(apis.ParameterTarget(p))
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// opaque reports kinds that are left at their zero value when nothing can
// build them.
func opaque(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}
