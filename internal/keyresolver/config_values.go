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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/aegis/internal/msgs"
	"github.com/kaleido-io/aegis/pkg/aegtypes"
)

// Primary keystore settings live under this path in the server configuration.
const primaryKeyStorePropertyPrefix = "Security.KeyStore."

func (ksr *keyStoreResolver) primaryStoreProperty(configName string) string {
	return ksr.serverProps.FirstProperty(primaryKeyStorePropertyPrefix + configName)
}

func validConfigName(configName string) bool {
	for _, name := range aegtypes.KeyStoreConfigNames() {
		if name == configName {
			return true
		}
	}
	return false
}

// ResolveConfigValue answers one named keystore property through the same
// three-tier precedence as the key material operations, but each tier
// terminates in a configuration lookup rather than loading key material.
//
// The override tier delegates to the custom store's configuration entry. The
// primary tier reads the global server configuration. The tenant tier applies
// a fixed per-property strategy: the location is the tenant's derived store
// name (tenant stores live in the registry, not the filesystem), store type
// and passwords are the global primary-store settings (tenant stores share
// the primary password scheme), and the key alias is the tenant domain
// itself.
func (ksr *keyStoreResolver) ResolveConfigValue(ctx context.Context, tenantDomain string, protocol aegtypes.InboundProtocol, configName string) (string, error) {
	if err := validateArgs(ctx, tenantDomain, protocol); err != nil {
		return "", err
	}
	if !validConfigName(configName) {
		return "", i18n.NewError(ctx, msgs.MsgResolverInvalidConfigName, configName)
	}

	if m, applies := ksr.overrideMapping(tenantDomain, protocol); applies {
		storeName := aegtypes.CustomKeyStoreName(m.StoreName)
		provider, err := ksr.callerProvider(ctx, tenantDomain)
		if err != nil {
			return "", err
		}
		value, err := provider.CustomStoreConfig(ctx, storeName, configName)
		if err != nil {
			return "", i18n.WrapError(ctx, err, msgs.MsgResolverCustomConfigFailed, configName, storeName)
		}
		return value, nil
	}

	if isDefaultTenant(tenantDomain) {
		return ksr.primaryStoreProperty(configName), nil
	}

	switch configName {
	case aegtypes.KeyStoreConfigLocation:
		return aegtypes.TenantKeyStoreName(tenantDomain), nil
	case aegtypes.KeyStoreConfigType:
		return ksr.primaryStoreProperty(aegtypes.KeyStoreConfigType), nil
	case aegtypes.KeyStoreConfigPassword, aegtypes.KeyStoreConfigKeyPassword:
		return ksr.primaryStoreProperty(aegtypes.KeyStoreConfigPassword), nil
	default: // aegtypes.KeyStoreConfigKeyAlias
		return tenantDomain, nil
	}
}
