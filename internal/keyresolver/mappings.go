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
	"strings"

	"github.com/kaleido-io/aegis/internal/components"
	"github.com/kaleido-io/aegis/pkg/aegtypes"
	"github.com/kaleido-io/aegis/pkg/log"
)

// Config keys of one keystore mapping entry. The subtree is loosely typed in
// aegconf because validation happens here, per entry, without failing startup.
const (
	mappingFieldProtocol        = "protocol"
	mappingFieldKeyStoreName    = "keyStoreName"
	mappingFieldUseInAllTenants = "useInAllTenants"
)

// parseKeyStoreMappings builds the immutable protocol override table.
//
// Each entry needs all three fields. A malformed entry is logged and skipped,
// never aborting the load. Duplicate protocols are first-wins. A mapping for
// a protocol that does not support overrides yet (SAML) is recorded, so that
// duplicates of it are still reported, but the resolver's override tier
// ignores it.
func parseKeyStoreMappings(ctx context.Context, entries []map[string]any) map[aegtypes.InboundProtocol]components.KeyStoreMapping {
	mappings := make(map[aegtypes.InboundProtocol]components.KeyStoreMapping)
	for i, entry := range entries {
		rawProtocol := stringField(entry, mappingFieldProtocol)
		if rawProtocol == "" {
			log.L(ctx).Errorf("Ignoring keystore mapping entry %d with missing %s", i, mappingFieldProtocol)
			continue
		}
		protocol, ok := aegtypes.ParseInboundProtocol(rawProtocol)
		if !ok {
			log.L(ctx).Warnf("Ignoring keystore mapping entry %d for unrecognized protocol '%s'", i, rawProtocol)
			continue
		}
		if _, isDuplicate := mappings[protocol]; isDuplicate {
			log.L(ctx).Warnf("Duplicate keystore mapping for %s protocol. Only the first mapping is used", protocol)
			continue
		}
		storeName := stringField(entry, mappingFieldKeyStoreName)
		if storeName == "" {
			log.L(ctx).Errorf("Ignoring keystore mapping for %s protocol with missing %s", protocol, mappingFieldKeyStoreName)
			continue
		}
		useInAllTenants, ok := entry[mappingFieldUseInAllTenants]
		if !ok {
			log.L(ctx).Errorf("Ignoring keystore mapping for %s protocol with missing %s", protocol, mappingFieldUseInAllTenants)
			continue
		}
		if !protocol.SupportsStoreOverride() {
			log.L(ctx).Warnf("Keystore mapping for %s protocol is not supported yet. Resolution for %s continues through the tenant and primary keystores", protocol, protocol)
		}
		mappings[protocol] = components.KeyStoreMapping{
			Protocol:        protocol,
			StoreName:       storeName,
			UseInAllTenants: permissiveBool(useInAllTenants),
		}
		log.L(ctx).Debugf("Loaded keystore mapping %s -> %s (useInAllTenants=%t)", protocol, storeName, mappings[protocol].UseInAllTenants)
	}
	return mappings
}

func stringField(entry map[string]any, field string) string {
	s, _ := entry[field].(string)
	return strings.TrimSpace(s)
}

// Only the case-insensitive literal "true" (or a YAML boolean true) enables
// the flag. Anything else is false, not an error.
func permissiveBool(v any) bool {
	switch tv := v.(type) {
	case bool:
		return tv
	case string:
		return strings.EqualFold(strings.TrimSpace(tv), "true")
	default:
		return false
	}
}
