// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aegconf

import "github.com/kaleido-io/aegis/pkg/confutil"

const (
	KeyStoreTypePKCS12 = "pkcs12" // PKCS#12 bundle (single key entry plus certificate chain)
	KeyStoreTypePEM    = "pem"    // concatenated PEM blocks, aliased via 'alias' headers
)

type SecurityConfig struct {
	// the platform primary keystore, used for the default tenant
	KeyStore PrimaryKeyStoreConfig `json:"keyStore"`
	// custom keystores addressable by name from protocol mappings
	CustomKeyStores []CustomKeyStoreConfig `json:"customKeyStores"`
	// inbound protocol to custom keystore mappings.
	// Entries are validated individually at load - a malformed entry is
	// logged and skipped without failing startup, so the subtree stays
	// loosely typed here.
	KeyStoreMappings []map[string]any `json:"keyStoreMappings"`
	// cache of loaded (parsed) keystores
	StoreCache CacheConfig `json:"storeCache"`
	// the resolver's credential caches
	Resolver KeyResolverConfig `json:"resolver"`
}

type PrimaryKeyStoreConfig struct {
	Location    string  `json:"location"`
	Type        *string `json:"type"`
	Password    string  `json:"password"`
	KeyAlias    string  `json:"keyAlias"`
	KeyPassword string  `json:"keyPassword"`
}

type CustomKeyStoreConfig struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Type        *string `json:"type"`
	Password    string  `json:"password"`
	KeyAlias    string  `json:"keyAlias"`
	KeyPassword string  `json:"keyPassword"`
}

type KeyResolverConfig struct {
	PrivateKeyCache  CacheConfig `json:"privateKeyCache"`
	CertificateCache CacheConfig `json:"certificateCache"`
}

type TenantsConfig struct {
	// fixed tenant domain to id assignments, consulted before the registry
	Static map[string]int64 `json:"static"`
	Cache  CacheConfig      `json:"cache"`
}

var KeyStoreDefaults = &PrimaryKeyStoreConfig{
	Type: confutil.P(KeyStoreTypePKCS12),
}

var StoreCacheDefaults = &CacheConfig{
	Capacity: confutil.P(100),
}

// Credential caches hold resolved keys and certificates for the process
// lifetime - capacity 0 disables eviction.
var KeyResolverDefaults = &KeyResolverConfig{
	PrivateKeyCache: CacheConfig{
		Capacity: confutil.P(0),
	},
	CertificateCache: CacheConfig{
		Capacity: confutil.P(0),
	},
}

var TenantsDefaults = &TenantsConfig{
	Cache: CacheConfig{
		Capacity: confutil.P(1000),
	},
}
