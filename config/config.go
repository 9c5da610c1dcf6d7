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

// Package config holds the producer registries, rules and settings a build
// runs with.
//
// A Configuration is safe for concurrent use. Registries are copy-on-write,
// so a build that has taken a snapshot is unaffected by registrations made
// while it runs.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/hashicorp/go-multierror"

	"dirpx.dev/fixture/apis"
	"dirpx.dev/fixture/creators"
	"dirpx.dev/fixture/generators"
	"dirpx.dev/fixture/registry"
	uref "dirpx.dev/fixture/utils/reflect"
)

const (
	// DefaultMaxDepth represents the default for Settings.MaxDepth.
	// A value of 8 is enough for realistic object graphs.
	DefaultMaxDepth = 8
	// DefaultCollectionSize represents the default for Settings.CollectionSize.
	DefaultCollectionSize = 3
)

var (
	// ErrInvalidSettings is returned when settings fail validation.
	ErrInvalidSettings = errors.New("fixture(config): invalid settings")
	// ErrInvalidMapping is returned when a mapping target cannot stand in
	// for its source.
	ErrInvalidMapping = errors.New("fixture(config): invalid type mapping")
)

// Option is a functional option that mutates a Configuration during
// construction. Errors are collected and returned by New.
type Option func(*Configuration)

// Configuration implements apis.BuildConfiguration.
type Configuration struct {
	rules      *registry.Registry[apis.CreationRule]
	generators *registry.Registry[apis.ValueGenerator]
	creators   *registry.Registry[apis.TypeCreator]

	mu           sync.RWMutex
	ignores      []apis.IgnoreRule
	mappings     map[reflect.Type]reflect.Type
	constructors map[reflect.Type]apis.Constructor
	settings     apis.Settings

	// errs collects option failures during New.
	errs *multierror.Error
}

// Ensure Configuration implements apis.BuildConfiguration.
var _ apis.BuildConfiguration = (*Configuration)(nil)

// New constructs an empty Configuration from the given options. No
// producers are registered unless an option adds them.
func New(opts ...Option) (*Configuration, error) {
	c := &Configuration{
		rules:        &registry.Registry[apis.CreationRule]{},
		generators:   &registry.Registry[apis.ValueGenerator]{},
		creators:     &registry.Registry[apis.TypeCreator]{},
		mappings:     make(map[reflect.Type]reflect.Type),
		constructors: make(map[reflect.Type]apis.Constructor),
		settings:     DefaultSettings(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if err := c.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	c.errs = nil
	return c, nil
}

// DefaultConfig constructs a Configuration with the default value
// generators and type creators registered ahead of opts.
func DefaultConfig(opts ...Option) (*Configuration, error) {
	base := []Option{
		WithValueGenerators(generators.Default()...),
		WithTypeCreators(creators.Default()...),
	}
	return New(append(base, opts...)...)
}

// DefaultSettings returns the settings used when none are provided.
func DefaultSettings() apis.Settings {
	return apis.Settings{
		MaxDepth:       DefaultMaxDepth,
		CollectionSize: DefaultCollectionSize,
	}
}

func (c *Configuration) fail(err error) {
	c.errs = multierror.Append(c.errs, err)
}

// ---------------------- Options ----------------------

// WithCreationRules registers rules in order.
func WithCreationRules(rules ...apis.CreationRule) Option {
	return func(c *Configuration) {
		if err := c.AddCreationRule(rules...); err != nil {
			c.fail(err)
		}
	}
}

// WithValueGenerators registers generators in order.
func WithValueGenerators(gens ...apis.ValueGenerator) Option {
	return func(c *Configuration) {
		if err := c.AddValueGenerator(gens...); err != nil {
			c.fail(err)
		}
	}
}

// WithTypeCreators registers creators in order.
func WithTypeCreators(creators ...apis.TypeCreator) Option {
	return func(c *Configuration) {
		if err := c.AddTypeCreator(creators...); err != nil {
			c.fail(err)
		}
	}
}

// WithIgnore skips the field name of declaringType during population.
// A nil declaringType ignores the field on every struct.
func WithIgnore(declaringType reflect.Type, name string) Option {
	return func(c *Configuration) {
		if name == "" {
			c.fail(fmt.Errorf("%w: ignore rule needs a field name", ErrInvalidSettings))
			return
		}
		c.AddIgnoreRule(apis.IgnoreRule{DeclaringType: declaringType, Name: name})
	}
}

// Ignore skips the field name of T during population.
func Ignore[T any](name string) Option {
	return WithIgnore(reflect.TypeFor[T](), name)
}

// WithTypeMapping builds dst whenever src is requested. dst must be
// assignable to src.
func WithTypeMapping(src, dst reflect.Type) Option {
	return func(c *Configuration) {
		if err := c.AddTypeMapping(src, dst); err != nil {
			c.fail(err)
		}
	}
}

// Mapping builds D whenever S is requested.
func Mapping[S, D any]() Option {
	return WithTypeMapping(reflect.TypeFor[S](), reflect.TypeFor[D]())
}

// WithConstructor registers fn as the constructor of the type it returns.
// fn must return T or (T, error). names label the parameters in order and
// become their reference names; when omitted they default to arg0, arg1...
func WithConstructor(fn any, names ...string) Option {
	return func(c *Configuration) {
		ctor, err := NewConstructor(fn, names...)
		if err != nil {
			c.fail(err)
			return
		}
		c.AddConstructor(ctor)
	}
}

// WithMaxDepth sets Settings.MaxDepth.
// A non-positive value resets to the default.
func WithMaxDepth(depth int) Option {
	return func(c *Configuration) {
		if depth <= 0 {
			depth = DefaultMaxDepth
		}
		c.settings.MaxDepth = depth
	}
}

// WithCollectionSize sets Settings.CollectionSize.
// A negative value resets to the default.
func WithCollectionSize(size int) Option {
	return func(c *Configuration) {
		if size < 0 {
			size = DefaultCollectionSize
		}
		c.settings.CollectionSize = size
	}
}

// WithSettings replaces the settings after validating them.
func WithSettings(s apis.Settings) Option {
	return func(c *Configuration) {
		if err := ValidateSettings(s); err != nil {
			c.fail(err)
			return
		}
		c.settings = s
	}
}

// ValidateSettings reports every invalid field of s at once.
func ValidateSettings(s apis.Settings) error {
	var errs *multierror.Error
	if s.MaxDepth <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: max_depth must be positive, got %d", ErrInvalidSettings, s.MaxDepth))
	}
	if s.CollectionSize < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: collection_size must not be negative, got %d", ErrInvalidSettings, s.CollectionSize))
	}
	return errs.ErrorOrNil()
}

// ---------------------- Mutators ----------------------

// AddCreationRule registers rules after the existing ones.
func (c *Configuration) AddCreationRule(rules ...apis.CreationRule) error {
	if err := c.rules.Add(rules...); err != nil {
		return err
	}
	slog.Debug("fixture: registered creation rules", "count", len(rules), "total", c.rules.Count())
	return nil
}

// AddValueGenerator registers generators after the existing ones.
func (c *Configuration) AddValueGenerator(gens ...apis.ValueGenerator) error {
	if err := c.generators.Add(gens...); err != nil {
		return err
	}
	slog.Debug("fixture: registered value generators", "count", len(gens), "total", c.generators.Count())
	return nil
}

// AddTypeCreator registers creators after the existing ones.
func (c *Configuration) AddTypeCreator(creators ...apis.TypeCreator) error {
	if err := c.creators.Add(creators...); err != nil {
		return err
	}
	slog.Debug("fixture: registered type creators", "count", len(creators), "total", c.creators.Count())
	return nil
}

// RemoveCreationRules drops every rule for which match returns true.
func (c *Configuration) RemoveCreationRules(match func(apis.CreationRule) bool) int {
	return c.rules.Remove(match)
}

// RemoveValueGenerators drops every generator for which match returns true.
func (c *Configuration) RemoveValueGenerators(match func(apis.ValueGenerator) bool) int {
	return c.generators.Remove(match)
}

// RemoveTypeCreators drops every creator for which match returns true.
func (c *Configuration) RemoveTypeCreators(match func(apis.TypeCreator) bool) int {
	return c.creators.Remove(match)
}

// AddIgnoreRule appends r.
func (c *Configuration) AddIgnoreRule(r apis.IgnoreRule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ignores = append(c.ignores[:len(c.ignores):len(c.ignores)], r)
}

// AddTypeMapping builds dst whenever src is requested.
func (c *Configuration) AddTypeMapping(src, dst reflect.Type) error {
	if src == nil {
		return apis.NilArgument("source")
	}
	if dst == nil {
		return apis.NilArgument("target")
	}
	if src == dst || !dst.AssignableTo(src) {
		return fmt.Errorf("%w: %s cannot stand in for %s", ErrInvalidMapping, uref.FullName(dst), uref.FullName(src))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.mappings[src] = dst
	return nil
}

// AddConstructor registers ctor for the type it produces, replacing any
// earlier registration.
func (c *Configuration) AddConstructor(ctor apis.Constructor) {
	if ctor == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constructors[ctor.Type()] = ctor
	slog.Debug("fixture: registered constructor", "type", uref.FullName(ctor.Type()), "params", len(ctor.Parameters()))
}

// ---------------------- apis.BuildConfiguration ----------------------

// CreationRules implements apis.BuildConfiguration.
func (c *Configuration) CreationRules() []apis.CreationRule { return c.rules.Snapshot() }

// ValueGenerators implements apis.BuildConfiguration.
func (c *Configuration) ValueGenerators() []apis.ValueGenerator { return c.generators.Snapshot() }

// TypeCreators implements apis.BuildConfiguration.
func (c *Configuration) TypeCreators() []apis.TypeCreator { return c.creators.Snapshot() }

// IgnoreRules implements apis.BuildConfiguration.
func (c *Configuration) IgnoreRules() []apis.IgnoreRule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ignores
}

// TypeMapping implements apis.BuildConfiguration.
func (c *Configuration) TypeMapping(t reflect.Type) (reflect.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dst, ok := c.mappings[t]
	return dst, ok
}

// Constructor implements apis.BuildConfiguration. A constructor registered
// for *T also serves T and vice versa; callers adapt the result.
func (c *Configuration) Constructor(t reflect.Type) (apis.Constructor, bool) {
	if t == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ctor, ok := c.constructors[t]; ok {
		return ctor, true
	}
	if t.Kind() == reflect.Pointer {
		ctor, ok := c.constructors[t.Elem()]
		return ctor, ok
	}
	ctor, ok := c.constructors[reflect.PointerTo(t)]
	return ctor, ok
}

// Settings implements apis.BuildConfiguration.
func (c *Configuration) Settings() apis.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}
