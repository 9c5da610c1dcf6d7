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
	"reflect"
	"regexp"

	"github.com/go-faker/faker/v4"

	"dirpx.dev/fixture/apis"
)

var (
	urlPattern    = regexp.MustCompile(`(?i)(url|uri|website|homepage|link)$`)
	domainPattern = regexp.MustCompile(`(?i)(domain|host_?name)$`)
	ipPattern     = regexp.MustCompile(`(?i)^(ip|ip_?addr(ess)?|ipv4|remote_?addr)$`)
	uuidPattern   = regexp.MustCompile(`^(?i:uuid|guid|id)$|(ID|Id|UUID|Uuid)$`)
)

// URL returns the generator for URL fields.
func URL() *URLGenerator {
	return &URLGenerator{namedString{priority: PriorityNetwork, pattern: urlPattern}}
}

// URLGenerator produces absolute http(s) URLs.
type URLGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *URLGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, faker.URL())
}

// Domain returns the generator for domain and host name fields.
func Domain() *DomainGenerator {
	return &DomainGenerator{namedString{priority: PriorityNetwork, pattern: domainPattern}}
}

// DomainGenerator produces domain names.
type DomainGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *DomainGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, faker.DomainName())
}

// IPAddress returns the generator for IP address fields.
func IPAddress() *IPAddressGenerator {
	return &IPAddressGenerator{namedString{priority: PriorityNetwork, pattern: ipPattern}}
}

// IPAddressGenerator produces IPv4 addresses.
type IPAddressGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *IPAddressGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, faker.IPv4())
}

// UUID returns the generator for identifier strings.
func UUID() *UUIDGenerator {
	return &UUIDGenerator{namedString{priority: PriorityID, pattern: uuidPattern}}
}

// UUIDGenerator produces hyphenated UUIDs for string identifiers.
type UUIDGenerator struct{ namedString }

// Generate implements apis.ValueGenerator.
func (g *UUIDGenerator) Generate(_ apis.ExecuteStrategy, t reflect.Type, _ string) (any, error) {
	return convert(t, faker.UUIDHyphenated())
}
