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

// Package fixture creates populated test data for arbitrary Go types.
//
// fixture walks a type, asks a prioritized pipeline of build actions for a
// value for every type, struct field and constructor parameter it meets,
// and assembles the result:
//
//	p := fixture.MustCreate[*Person]()
//	// p.Email is an e-mail address, p.Name a full name, p.Orders three orders...
//
// # Design
//
// Every request is normalized into an apis.BuildTarget: a type plus the
// reference name of the field or parameter it came from. The resolver
// offers the target to four build actions in descending priority:
//
//  1. CircularReference: an instance of exactly this type is already being
//     built further up the chain; reuse it instead of recursing.
//  2. CreationRule: user-supplied overrides (package rules).
//  3. ValueGenerator: scalar values (package generators), e.g. names,
//     e-mail addresses, numbers and times.
//  4. TypeCreator: structs, pointers and collections (package creators).
//
// Within an action the producer with the highest priority wins and ties go
// to the producer registered first. The winning action reports an
// apis.BuildCapability: whether it can create, whether it can populate,
// and whether the strategy should build constructor arguments first.
//
// When a producer fails, the error is wrapped in an *apis.BuildError
// carrying the target, the producer, the build chain and the build log.
// The original error stays reachable through errors.Is and errors.As.
//
// # Global API
//
// The package holds a read-mostly global snapshot of three things:
//
//   - Config: the producer registries, ignore rules, type mappings,
//     constructors and settings (package config).
//
//   - Builder: a pluggable factory for the resolver and for the per-build
//     execute strategy (package builder).
//
//   - Resolver: the action pipeline built by the Builder for the Config.
//
// Read helpers (Create, MustCreate, CreateType, Populate, Config, Builder,
// Resolver) load the current snapshot atomically and take no locks.
// Mutation helpers (SetConfig, SetBuilder, SetLogger, SetResolver, SetAll)
// take a short build mutex, derive a new snapshot and publish it. Nil
// arguments leave the corresponding component unchanged.
//
// SetResolver pins the resolver: later SetConfig and SetBuilder calls keep
// it until UnpinResolver is called.
//
// # Usage pattern in tests
//
//	cfg, _ := config.DefaultConfig(
//		config.WithCreationRules(rules.Value[Currency](10, "EUR")),
//		config.Ignore[User]("Password"),
//		config.WithConstructor(NewAccount, "owner", "limit"),
//	)
//	fixture.SetConfig(cfg)
//
//	u := fixture.MustCreate[*User]()
//
// Each Create call runs on its own execute strategy with its own chain and
// log, so concurrent calls do not interfere.
package fixture
