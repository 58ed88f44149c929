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

package aegtypes

import (
	"strings"
)

const (
	// DefaultTenantDomain is the domain of the root tenant, which owns the
	// primary keystore.
	DefaultTenantDomain = "default"

	// DefaultTenantID is the well-known id of the root tenant. Registered
	// tenants get database-assigned ids starting at 1.
	DefaultTenantID int64 = 0
)

// CustomKeyStorePrefix namespaces protocol-override keystores away from
// tenant keystores, so the two name spaces cannot collide.
const CustomKeyStorePrefix = "custom/"

// TenantKeyStoreSuffix is the store suffix appended to derived tenant
// keystore names.
const TenantKeyStoreSuffix = ".p12"

// Configuration value names accepted by the keystore config query operations.
const (
	KeyStoreConfigLocation    = "Location"
	KeyStoreConfigType        = "Type"
	KeyStoreConfigPassword    = "Password"
	KeyStoreConfigKeyPassword = "KeyPassword"
	KeyStoreConfigKeyAlias    = "KeyAlias"
)

// KeyStoreConfigNames returns the accepted configuration value names, in
// stable order.
func KeyStoreConfigNames() []string {
	return []string{
		KeyStoreConfigLocation,
		KeyStoreConfigType,
		KeyStoreConfigPassword,
		KeyStoreConfigKeyPassword,
		KeyStoreConfigKeyAlias,
	}
}

// TenantKeyStoreName derives the registry name of a tenant's keystore from
// its domain. Dots map to dashes: "tenant.example.com" -> "tenant-example-com.p12".
func TenantKeyStoreName(tenantDomain string) string {
	return strings.ReplaceAll(tenantDomain, ".", "-") + TenantKeyStoreSuffix
}

// CustomKeyStoreName applies the custom-store namespace prefix, exactly once.
func CustomKeyStoreName(name string) string {
	if IsCustomKeyStoreName(name) {
		return name
	}
	return CustomKeyStorePrefix + name
}

// StripCustomKeyStorePrefix returns the bare store name, whether or not the
// supplied name carries the namespace prefix.
func StripCustomKeyStorePrefix(name string) string {
	return strings.TrimPrefix(name, CustomKeyStorePrefix)
}

// IsCustomKeyStoreName reports whether the name is in the custom-store
// namespace.
func IsCustomKeyStoreName(name string) bool {
	return strings.HasPrefix(name, CustomKeyStorePrefix)
}
