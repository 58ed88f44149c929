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

package keyresolver

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"path/filepath"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/aegis/internal/components"
	"github.com/kaleido-io/aegis/internal/msgs"
	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/kaleido-io/aegis/pkg/aegtypes"
	"github.com/kaleido-io/aegis/pkg/cache"
)

// credentialKey is the tagged cache key for the credential caches. Exactly
// one of the two fields carries the identity: the override tier keys by
// protocol, the primary and tenant tiers key by tenant id (the default
// tenant's id is zero, with an empty protocol). The two key spaces cannot
// collide structurally.
type credentialKey struct {
	tenantID int64
	protocol aegtypes.InboundProtocol
}

func tenantCredentialKey(tenantID int64) credentialKey {
	return credentialKey{tenantID: tenantID}
}

func overrideCredentialKey(protocol aegtypes.InboundProtocol) credentialKey {
	return credentialKey{protocol: protocol}
}

type keyStoreResolver struct {
	bgCtx context.Context

	mappings    map[aegtypes.InboundProtocol]components.KeyStoreMapping
	serverProps aegconf.ServerProperties
	tenants     components.TenantResolver
	providers   components.KeyMaterialProviderFactory

	// Resolved credentials are memoized for the process lifetime. Entries
	// are never mutated or evicted; concurrent duplicate computation of the
	// same key is a benign race (the second write stores an equivalent value).
	privateKeys  cache.Cache[credentialKey, crypto.PrivateKey]
	certificates cache.Cache[credentialKey, *x509.Certificate]
}

// NewKeyStoreResolver builds the resolver, parsing the protocol override
// mappings eagerly so there is no initialization race on first use.
func NewKeyStoreResolver(bgCtx context.Context, conf *aegconf.SecurityConfig, serverProps aegconf.ServerProperties, tenants components.TenantResolver, providers components.KeyMaterialProviderFactory) components.KeyStoreResolver {
	return &keyStoreResolver{
		bgCtx:        bgCtx,
		mappings:     parseKeyStoreMappings(bgCtx, conf.KeyStoreMappings),
		serverProps:  serverProps,
		tenants:      tenants,
		providers:    providers,
		privateKeys:  cache.NewCache[credentialKey, crypto.PrivateKey](&conf.Resolver.PrivateKeyCache, &aegconf.KeyResolverDefaults.PrivateKeyCache),
		certificates: cache.NewCache[credentialKey, *x509.Certificate](&conf.Resolver.CertificateCache, &aegconf.KeyResolverDefaults.CertificateCache),
	}
}

func (ksr *keyStoreResolver) Mappings() map[aegtypes.InboundProtocol]components.KeyStoreMapping {
	mappings := make(map[aegtypes.InboundProtocol]components.KeyStoreMapping, len(ksr.mappings))
	for protocol, m := range ksr.mappings {
		mappings[protocol] = m
	}
	return mappings
}

// Validation happens before any cache, tenant or provider access, on every
// public operation.
func validateArgs(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) error {
	if strings.TrimSpace(tenantDomain) == "" {
		return i18n.NewError(ctx, msgs.MsgResolverInvalidArgument, "tenantDomain")
	}
	if protocol == "" {
		return i18n.NewError(ctx, msgs.MsgResolverInvalidArgument, "protocol")
	}
	return nil
}

func isDefaultTenant(tenantDomain string) bool {
	return strings.EqualFold(strings.TrimSpace(tenantDomain), aegtypes.DefaultTenantDomain)
}

// overrideMapping returns the mapping the override tier must honor for this
// call, if there is one. A mapping applies when the protocol supports
// overrides, and the caller is the default tenant or the mapping is flagged
// for all tenants.
func (ksr *keyStoreResolver) overrideMapping(tenantDomain string, protocol aegtypes.InboundProtocol) (components.KeyStoreMapping, bool) {
	m, exists := ksr.mappings[protocol]
	if !exists || !protocol.SupportsStoreOverride() {
		return components.KeyStoreMapping{}, false
	}
	if !isDefaultTenant(tenantDomain) && !m.UseInAllTenants {
		return components.KeyStoreMapping{}, false
	}
	return m, true
}

func (ksr *keyStoreResolver) tenantID(ctx context.Context, tenantDomain string) (int64, error) {
	tenantID, err := ksr.tenants.TenantID(ctx, tenantDomain)
	if err != nil {
		return -1, i18n.WrapError(ctx, err, msgs.MsgResolverTenantLookupFailed, tenantDomain)
	}
	return tenantID, nil
}

func (ksr *keyStoreResolver) providerFor(ctx context.Context, tenantID int64) (components.KeyMaterialProvider, error) {
	return ksr.providers.ProviderForTenant(ctx, tenantID)
}

// ResolveKeyStore returns the keystore handle selected for the pair.
// Keystore handles are not cached here - only the provider's own store cache
// applies - so every invocation reaches the provider.
func (ksr *keyStoreResolver) ResolveKeyStore(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (components.KeyStoreHandle, error) {
	if err := validateArgs(ctx, tenantDomain, protocol); err != nil {
		return nil, err
	}
	tenantID, err := ksr.tenantID(ctx, tenantDomain)
	if err != nil {
		return nil, err
	}
	provider, err := ksr.providerFor(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if m, applies := ksr.overrideMapping(tenantDomain, protocol); applies {
		storeName := aegtypes.CustomKeyStoreName(m.StoreName)
		handle, err := provider.KeyStore(ctx, storeName)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgResolverCustomKeyStoreFailed, storeName)
		}
		return handle, nil
	}
	if tenantID == aegtypes.DefaultTenantID {
		handle, err := provider.PrimaryKeyStore(ctx)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgResolverPrimaryKeyStoreFailed)
		}
		return handle, nil
	}
	handle, err := provider.KeyStore(ctx, aegtypes.TenantKeyStoreName(tenantDomain))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgResolverTenantKeyStoreFailed, tenantDomain)
	}
	return handle, nil
}

// ResolvePrivateKey returns the private key selected for the pair, resolving
// it through the provider at most once per distinct cache key.
func (ksr *keyStoreResolver) ResolvePrivateKey(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (crypto.PrivateKey, error) {
	if err := validateArgs(ctx, tenantDomain, protocol); err != nil {
		return nil, err
	}

	if m, applies := ksr.overrideMapping(tenantDomain, protocol); applies {
		key := overrideCredentialKey(protocol)
		if pk, isCached := ksr.privateKeys.Get(key); isCached {
			return pk, nil
		}
		provider, err := ksr.callerProvider(ctx, tenantDomain)
		if err != nil {
			return nil, err
		}
		// Empty alias hint - the override store's configured alias applies
		pk, err := provider.PrivateKey(ctx, aegtypes.CustomKeyStoreName(m.StoreName), "")
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgResolverCustomPrivateKeyFailed, protocol)
		}
		ksr.privateKeys.Set(key, pk)
		return pk, nil
	}

	tenantID, err := ksr.tenantID(ctx, tenantDomain)
	if err != nil {
		return nil, err
	}
	key := tenantCredentialKey(tenantID)
	if pk, isCached := ksr.privateKeys.Get(key); isCached {
		return pk, nil
	}
	provider, err := ksr.providerFor(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var pk crypto.PrivateKey
	if tenantID == aegtypes.DefaultTenantID {
		if pk, err = provider.DefaultPrivateKey(ctx); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgResolverPrimaryKeyFailed)
		}
	} else {
		if pk, err = provider.PrivateKey(ctx, aegtypes.TenantKeyStoreName(tenantDomain), tenantDomain); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgResolverTenantKeyFailed, tenantDomain)
		}
	}
	ksr.privateKeys.Set(key, pk)
	return pk, nil
}

// ResolveCertificate returns the certificate selected for the pair, resolving
// it through the provider at most once per distinct cache key.
func (ksr *keyStoreResolver) ResolveCertificate(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (*x509.Certificate, error) {
	if err := validateArgs(ctx, tenantDomain, protocol); err != nil {
		return nil, err
	}

	if m, applies := ksr.overrideMapping(tenantDomain, protocol); applies {
		key := overrideCredentialKey(protocol)
		if cert, isCached := ksr.certificates.Get(key); isCached {
			return cert, nil
		}
		provider, err := ksr.callerProvider(ctx, tenantDomain)
		if err != nil {
			return nil, err
		}
		cert, err := provider.Certificate(ctx, aegtypes.CustomKeyStoreName(m.StoreName), "")
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgResolverCustomCertFailed, protocol)
		}
		ksr.certificates.Set(key, cert)
		return cert, nil
	}

	tenantID, err := ksr.tenantID(ctx, tenantDomain)
	if err != nil {
		return nil, err
	}
	key := tenantCredentialKey(tenantID)
	if cert, isCached := ksr.certificates.Get(key); isCached {
		return cert, nil
	}
	provider, err := ksr.providerFor(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var cert *x509.Certificate
	if tenantID == aegtypes.DefaultTenantID {
		if cert, err = provider.DefaultCertificate(ctx); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgResolverPrimaryCertFailed)
		}
	} else {
		if cert, err = provider.Certificate(ctx, aegtypes.TenantKeyStoreName(tenantDomain), tenantDomain); err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgResolverTenantCertFailed, tenantDomain)
		}
	}
	ksr.certificates.Set(key, cert)
	return cert, nil
}

// ResolvePublicKey extracts the RSA public key from the resolved certificate.
// Only RSA certificates are supported for inbound protocol credentials; any
// other algorithm is an explicit error rather than a failed cast.
func (ksr *keyStoreResolver) ResolvePublicKey(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (*rsa.PublicKey, error) {
	cert, err := ksr.ResolveCertificate(ctx, tenantDomain, protocol)
	if err != nil {
		return nil, err
	}
	publicKey, isRSA := cert.PublicKey.(*rsa.PublicKey)
	if !isRSA {
		return nil, i18n.NewError(ctx, msgs.MsgResolverUnsupportedKeyAlg, cert.PublicKeyAlgorithm)
	}
	return publicKey, nil
}

// ResolveKeyStoreName returns the name of the keystore the other operations
// would resolve against. Names are cheap to derive, so this neither caches
// nor calls the provider.
func (ksr *keyStoreResolver) ResolveKeyStoreName(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol) (string, error) {
	if err := validateArgs(ctx, tenantDomain, protocol); err != nil {
		return "", err
	}
	if m, applies := ksr.overrideMapping(tenantDomain, protocol); applies {
		return aegtypes.CustomKeyStoreName(m.StoreName), nil
	}
	if isDefaultTenant(tenantDomain) {
		location := ksr.primaryStoreProperty(aegtypes.KeyStoreConfigLocation)
		if location == "" {
			return "", i18n.NewError(ctx, msgs.MsgResolverPrimaryConfigMissing, aegtypes.KeyStoreConfigLocation)
		}
		return filepath.Base(location), nil
	}
	return aegtypes.TenantKeyStoreName(tenantDomain), nil
}

// callerProvider resolves the calling tenant's id and returns its provider.
// Override stores are shared, but access still goes through the caller's own
// provider view.
func (ksr *keyStoreResolver) callerProvider(ctx context.Context, tenantDomain string) (components.KeyMaterialProvider, error) {
	tenantID, err := ksr.tenantID(ctx, tenantDomain)
	if err != nil {
		return nil, err
	}
	return ksr.providerFor(ctx, tenantID)
}
