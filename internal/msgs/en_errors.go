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

package msgs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const aegisPrefix = "AE01"

var registered sync.Once
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(aegisPrefix, "Aegis Key Services")
	})
	if !strings.HasPrefix(key, aegisPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", aegisPrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Config AE0100XX
	MsgConfigFileMissing    = ffe("AE010000", "Config file not found at path: %s")
	MsgConfigFileReadError  = ffe("AE010001", "Failed to read config file %s: %s")
	MsgConfigFileParseError = ffe("AE010002", "Failed to parse config file %s: %s")

	// Persistence AE0101XX
	MsgPersistenceInvalidType         = ffe("AE010100", "Invalid database type: %s")
	MsgPersistenceInitFailed          = ffe("AE010101", "Database initialization failed")
	MsgPersistenceMigrationFailed     = ffe("AE010102", "Database migration failed")
	MsgPersistenceMissingDSN          = ffe("AE010103", "Missing database connection Data Source Name (DSN)")
	MsgPersistenceMissingMigrationDir = ffe("AE010104", "Missing database migration directory for autoMigrate")
	MsgPersistenceInvalidDSNTemplate  = ffe("AE010105", "dsnParams were provided, but the DSN supplied is not a valid template")
	MsgPersistenceDSNParamLoadFile    = ffe("AE010106", "Failed to load dsnParams[%s] from '%s'")
	MsgPersistenceErrorInTransaction  = ffe("AE010107", "Error within database transaction: %v")

	// Key store resolver AE0102XX
	MsgResolverInvalidArgument        = ffe("AE010200", "Invalid argument: %s")
	MsgResolverTenantLookupFailed     = ffe("AE010201", "Error while retrieving tenant id for tenant domain %s")
	MsgResolverCustomKeyStoreFailed   = ffe("AE010202", "Error retrieving custom keystore %s")
	MsgResolverCustomPrivateKeyFailed = ffe("AE010203", "Error retrieving private key from custom keystore for %s protocol")
	MsgResolverCustomCertFailed       = ffe("AE010204", "Error retrieving certificate from custom keystore for %s protocol")
	MsgResolverCustomConfigFailed     = ffe("AE010205", "Error retrieving configuration %s from custom keystore %s")
	MsgResolverPrimaryKeyStoreFailed  = ffe("AE010206", "Error retrieving primary keystore")
	MsgResolverPrimaryKeyFailed       = ffe("AE010207", "Error retrieving private key from primary keystore")
	MsgResolverPrimaryCertFailed      = ffe("AE010208", "Error retrieving certificate from primary keystore")
	MsgResolverPrimaryConfigMissing   = ffe("AE010209", "Primary keystore configuration %s is not set")
	MsgResolverTenantKeyStoreFailed   = ffe("AE010210", "Error retrieving keystore of tenant %s")
	MsgResolverTenantKeyFailed        = ffe("AE010211", "Error retrieving private key of tenant %s")
	MsgResolverTenantCertFailed       = ffe("AE010212", "Error retrieving certificate of tenant %s")
	MsgResolverUnsupportedKeyAlg      = ffe("AE010213", "Unsupported public key algorithm %s (only RSA keys are supported)")
	MsgResolverInvalidConfigName      = ffe("AE010214", "Unsupported keystore configuration name %s")

	// Key stores AE0103XX
	MsgKeyStoreUnknownType          = ffe("AE010300", "Unknown type '%s' for keystore %s")
	MsgKeyStoreFileReadFailed       = ffe("AE010301", "Failed to read keystore file %s")
	MsgKeyStoreDecodeFailed         = ffe("AE010302", "Failed to decode keystore %s")
	MsgKeyStoreAliasNotFound        = ffe("AE010303", "Alias %s not found in keystore %s")
	MsgKeyStoreNoPrivateKey         = ffe("AE010304", "Keystore %s has no private key under alias %s")
	MsgKeyStoreNoCertificate        = ffe("AE010305", "Keystore %s has no certificate under alias %s")
	MsgKeyStoreCustomNotConfigured  = ffe("AE010306", "Custom keystore %s is not configured")
	MsgKeyStoreCustomConfigUnknown  = ffe("AE010307", "Configuration %s is not available for custom keystore %s")
	MsgKeyStoreTenantStoreNotFound  = ffe("AE010308", "Keystore %s not found for tenant %d")
	MsgKeyStorePrimaryNotConfigured = ffe("AE010309", "Primary keystore is not configured")
	MsgKeyStoreAlreadyRegistered    = ffe("AE010310", "Keystore %s already registered for tenant %d")
	MsgKeyStoreNoDefaultAlias       = ffe("AE010311", "Keystore %s has multiple key entries and no default alias configured")
	MsgKeyStoreInvalidTenantID      = ffe("AE010312", "Invalid tenant id %d for tenant keystore operation")

	// Tenants AE0104XX
	MsgTenantUnknownDomain      = ffe("AE010400", "Tenant domain %s is not registered")
	MsgTenantRegistrationFailed = ffe("AE010401", "Failed to register tenant domain %s")

	// Types AE0105XX
	MsgTypesInvalidNameSafeChar = ffe("AE010500", "Field '%s' must be 1-%d characters, start and end in an alphanumeric, and contain only alphanumerics or . - _ characters: '%s'")

	// Lifecycle AE0106XX
	MsgAegisPersistenceInitFailed = ffe("AE010600", "Error initializing persistence")
)
