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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerPropertiesFlattening(t *testing.T) {
	sp, err := NewServerProperties(&AegisConfig{
		Security: SecurityConfig{
			KeyStore: PrimaryKeyStoreConfig{
				Location: "/var/aegis/primary.p12",
				Password: "changeit",
				KeyAlias: "aegis",
			},
			CustomKeyStores: []CustomKeyStoreConfig{
				{Name: "oauthStore", Location: "/var/aegis/oauth.p12"},
				{Name: "second", Location: "/var/aegis/second.p12"},
			},
		},
	})
	require.NoError(t, err)

	// paths are case-insensitive
	assert.Equal(t, "/var/aegis/primary.p12", sp.FirstProperty("Security.KeyStore.Location"))
	assert.Equal(t, "changeit", sp.FirstProperty("security.keystore.password"))
	assert.Equal(t, "aegis", sp.FirstProperty("SECURITY.KEYSTORE.KEYALIAS"))

	// arrays resolve to their first element
	assert.Equal(t, "oauthStore", sp.FirstProperty("Security.CustomKeyStores.Name"))

	// unset paths are empty
	assert.Empty(t, sp.FirstProperty("Security.KeyStore.Nothing"))
}

func TestServerPropertiesScalarForms(t *testing.T) {
	sp, err := NewServerProperties(map[string]any{
		"a": map[string]any{
			"flag":  true,
			"count": 100,
			"ratio": 1.5,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "true", sp.FirstProperty("a.flag"))
	assert.Equal(t, "100", sp.FirstProperty("a.count"))
	assert.Equal(t, "1.5", sp.FirstProperty("a.ratio"))
}

func TestServerPropertiesBadInput(t *testing.T) {
	_, err := NewServerProperties(map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}
