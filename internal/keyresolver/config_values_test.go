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
	"fmt"
	"testing"

	"github.com/kaleido-io/aegis/pkg/aegtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigValueOverrideTier(t *testing.T) {
	ctx, ksr, mc, done := newTestResolver(t, oauthOverrideConf(true))
	defer done()

	mc.expectTenant("tenantA.com", 5)
	mc.provider.On("CustomStoreConfig", mock.Anything, "custom/oauthStore", aegtypes.KeyStoreConfigKeyAlias).Return("oauthSigning", nil).Once()

	value, err := ksr.ResolveConfigValue(ctx, "tenantA.com", aegtypes.ProtocolOAuth, aegtypes.KeyStoreConfigKeyAlias)
	require.NoError(t, err)
	assert.Equal(t, "oauthSigning", value)
}

func TestResolveConfigValueOverrideTierFailureWrapped(t *testing.T) {
	ctx, ksr, mc, done := newTestResolver(t, oauthOverrideConf(true))
	defer done()

	mc.expectTenant("tenantA.com", 5)
	mc.provider.On("CustomStoreConfig", mock.Anything, "custom/oauthStore", aegtypes.KeyStoreConfigType).Return("", fmt.Errorf("pop"))

	_, err := ksr.ResolveConfigValue(ctx, "tenantA.com", aegtypes.ProtocolOAuth, aegtypes.KeyStoreConfigType)
	assert.Regexp(t, "AE010205.*Type.*custom/oauthStore", err)
	assert.Regexp(t, "pop", err)
}

func TestResolveConfigValuePrimaryTier(t *testing.T) {
	// An unmapped protocol for the default tenant reads the global
	// Security.KeyStore.* properties of the server configuration
	ctx, ksr, _, done := newTestResolver(t, oauthOverrideConf(true))
	defer done()

	for configName, expected := range map[string]string{
		aegtypes.KeyStoreConfigLocation: "/var/keystores/primary.p12",
		aegtypes.KeyStoreConfigType:     "pkcs12",
		aegtypes.KeyStoreConfigPassword: "primaryPassphrase",
		aegtypes.KeyStoreConfigKeyAlias: "primaryAlias",
	} {
		value, err := ksr.ResolveConfigValue(ctx, "default", aegtypes.ProtocolOIDC, configName)
		require.NoError(t, err)
		assert.Equal(t, expected, value, configName)
	}

	// Unset properties resolve to empty, not an error
	value, err := ksr.ResolveConfigValue(ctx, "default", aegtypes.ProtocolOIDC, aegtypes.KeyStoreConfigKeyPassword)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestResolveConfigValueTenantTierStrategies(t *testing.T) {
	ctx, ksr, _, done := newTestResolver(t, oauthOverrideConf(false))
	defer done()

	// Location is the derived registry store name - tenant stores are not
	// files on disk
	value, err := ksr.ResolveConfigValue(ctx, "tenantB.com", aegtypes.ProtocolOIDC, aegtypes.KeyStoreConfigLocation)
	require.NoError(t, err)
	assert.Equal(t, "tenantB-com.p12", value)

	// Type and both password properties share the primary store's settings
	value, err = ksr.ResolveConfigValue(ctx, "tenantB.com", aegtypes.ProtocolOIDC, aegtypes.KeyStoreConfigType)
	require.NoError(t, err)
	assert.Equal(t, "pkcs12", value)

	value, err = ksr.ResolveConfigValue(ctx, "tenantB.com", aegtypes.ProtocolOIDC, aegtypes.KeyStoreConfigPassword)
	require.NoError(t, err)
	assert.Equal(t, "primaryPassphrase", value)

	value, err = ksr.ResolveConfigValue(ctx, "tenantB.com", aegtypes.ProtocolOIDC, aegtypes.KeyStoreConfigKeyPassword)
	require.NoError(t, err)
	assert.Equal(t, "primaryPassphrase", value)

	// The key alias is the tenant domain string, exactly as supplied
	value, err = ksr.ResolveConfigValue(ctx, "tenantB.com", aegtypes.ProtocolOIDC, aegtypes.KeyStoreConfigKeyAlias)
	require.NoError(t, err)
	assert.Equal(t, "tenantB.com", value)
}

func TestResolveConfigValueDefaultOnlyMappingForTenant(t *testing.T) {
	// A mapping without useInAllTenants does not apply to a non-default
	// tenant, so the tenant-tier strategy answers
	ctx, ksr, _, done := newTestResolver(t, oauthOverrideConf(false))
	defer done()

	value, err := ksr.ResolveConfigValue(ctx, "tenantB.com", aegtypes.ProtocolOAuth, aegtypes.KeyStoreConfigKeyAlias)
	require.NoError(t, err)
	assert.Equal(t, "tenantB.com", value)
}
