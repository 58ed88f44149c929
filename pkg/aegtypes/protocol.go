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

// InboundProtocol is the closed set of inbound authentication protocols that
// can carry a keystore mapping.
type InboundProtocol string

const (
	ProtocolOAuth        InboundProtocol = "oauth"
	ProtocolOIDC         InboundProtocol = "oidc"
	ProtocolSAML         InboundProtocol = "saml"
	ProtocolWSTrust      InboundProtocol = "ws-trust"
	ProtocolWSFederation InboundProtocol = "ws-federation"
)

// InboundProtocols returns the full protocol set, in stable order.
func InboundProtocols() []InboundProtocol {
	return []InboundProtocol{
		ProtocolOAuth,
		ProtocolOIDC,
		ProtocolSAML,
		ProtocolWSTrust,
		ProtocolWSFederation,
	}
}

func (p InboundProtocol) String() string {
	return string(p)
}

// SupportsStoreOverride is false for protocols that keep a dedicated keystore
// configuration outside the mapping table. SAML mappings are accepted and
// recorded, but SAML resolution continues through the tenant and primary tiers.
func (p InboundProtocol) SupportsStoreOverride() bool {
	return p != ProtocolSAML
}

var protocolNormalizer = strings.NewReplacer("_", "-", " ", "-")

// ParseInboundProtocol matches a configured protocol name against the closed
// set. Matching is case-insensitive, ignores surrounding whitespace, and
// accepts '_' or ' ' in place of '-' in the hyphenated names.
func ParseInboundProtocol(s string) (InboundProtocol, bool) {
	normalized := protocolNormalizer.Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range InboundProtocols() {
		if string(p) == normalized {
			return p, true
		}
	}
	return "", false
}
