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

package components

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/x509"

	"github.com/kaleido-io/aegis/pkg/aegtypes"
)

// TenantResolver maps tenant domains to their numeric tenant ids.
type TenantResolver interface {
	// TenantID returns the id for a registered tenant domain. The default
	// tenant domain always resolves, to aegtypes.DefaultTenantID. An
	// unregistered domain is an error, not a zero id.
	TenantID(ctx context.Context, tenantDomain string) (int64, error)
}

// KeyMaterialProviderFactory builds the per-tenant view of key material.
type KeyMaterialProviderFactory interface {
	ProviderForTenant(ctx context.Context, tenantID int64) (KeyMaterialProvider, error)
}

// KeyMaterialProvider answers keystore, key and certificate lookups for a
// single tenant. The alias hint is advisory: an empty hint means the store's
// configured default alias applies.
type KeyMaterialProvider interface {
	PrimaryKeyStore(ctx context.Context) (KeyStoreHandle, error)
	KeyStore(ctx context.Context, name string) (KeyStoreHandle, error)
	DefaultPrivateKey(ctx context.Context) (crypto.PrivateKey, error)
	PrivateKey(ctx context.Context, storeName, aliasHint string) (crypto.PrivateKey, error)
	DefaultCertificate(ctx context.Context) (*x509.Certificate, error)
	Certificate(ctx context.Context, storeName, aliasHint string) (*x509.Certificate, error)
	// CustomStoreConfig answers one of the aegtypes.KeyStoreConfig* property
	// names from a custom store's configuration entry.
	CustomStoreConfig(ctx context.Context, storeName, propertyName string) (string, error)
}

// KeyStoreHandle is a read-only view of one loaded keystore. An empty alias
// selects the store's default entry.
type KeyStoreHandle interface {
	Name() string
	StoreType() string
	Aliases() []string
	// Certificate returns nil when the alias has no certificate entry
	Certificate(alias string) *x509.Certificate
	PrivateKey(ctx context.Context, alias string) (crypto.PrivateKey, error)
}

// KeyStoreMapping is one protocol override entry from the security
// configuration.
type KeyStoreMapping struct {
	Protocol        aegtypes.InboundProtocol `json:"protocol"`
	StoreName       string                   `json:"keyStoreName"`
	UseInAllTenants bool                     `json:"useInAllTenants"`
}

// KeyStoreResolver selects and memoizes the key material for a
// (tenant domain, inbound protocol) pair.
//
// Selection is three-tier, in fixed order: a protocol override store when a
// mapping applies, the primary store for the default tenant, and the
// tenant's own store otherwise. Private keys and certificates are cached for
// the process lifetime; keystore handles and configuration values are not.
type KeyStoreResolver interface {
	ResolveKeyStore(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (KeyStoreHandle, error)
	ResolvePrivateKey(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (crypto.PrivateKey, error)
	ResolveCertificate(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (*x509.Certificate, error)
	ResolvePublicKey(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (*rsa.PublicKey, error)
	ResolveKeyStoreName(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (string, error)
	ResolveConfigValue(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol, configName string) (string, error)
	// Mappings returns a copy of the parsed protocol override mappings.
	Mappings() map[aegtypes.InboundProtocol]KeyStoreMapping
}
