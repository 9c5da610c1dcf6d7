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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"dirpx.dev/fixture/apis"
)

// File is the YAML form of the settings. Absent keys keep their defaults.
//
//	max_depth: 4
//	collection_size: 2
//	ignore:
//	  - type: example.com/app.User
//	    name: Password
//	  - name: ID
type File struct {
	MaxDepth       *int         `yaml:"max_depth"`
	CollectionSize *int         `yaml:"collection_size"`
	Ignore         []IgnoreItem `yaml:"ignore"`
}

// IgnoreItem is one entry of the ignore list. Type is a full type name such
// as "example.com/app.User"; empty applies to every struct.
type IgnoreItem struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

// LoadFile reads a settings file and returns the Option that applies it.
func LoadFile(path string) (Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	opt, err := LoadSettings(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}
	return opt, nil
}

// LoadSettings decodes YAML settings from r. Unknown keys are rejected and
// every invalid value is reported at once.
func LoadSettings(r io.Reader) (Option, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Option(), nil
}

// Validate reports every invalid value in f.
func (f *File) Validate() error {
	var errs *multierror.Error
	if f.MaxDepth != nil && *f.MaxDepth <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: max_depth must be positive, got %d", ErrInvalidSettings, *f.MaxDepth))
	}
	if f.CollectionSize != nil && *f.CollectionSize < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: collection_size must not be negative, got %d", ErrInvalidSettings, *f.CollectionSize))
	}
	for i, it := range f.Ignore {
		if it.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("%w: ignore[%d] needs a name", ErrInvalidSettings, i))
		}
	}
	return errs.ErrorOrNil()
}

// Option returns the Option applying f. f should have been validated.
func (f *File) Option() Option {
	return func(c *Configuration) {
		if f.MaxDepth != nil {
			c.settings.MaxDepth = *f.MaxDepth
		}
		if f.CollectionSize != nil {
			c.settings.CollectionSize = *f.CollectionSize
		}
		for _, it := range f.Ignore {
			c.AddIgnoreRule(apis.IgnoreRule{DeclaringTypeName: it.Type, Name: it.Name})
		}
	}
}
