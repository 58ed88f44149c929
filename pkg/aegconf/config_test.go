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
	"context"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAndParseYAMLFileMissing(t *testing.T) {
	var conf AegisConfig
	err := ReadAndParseYAMLFile(context.Background(), path.Join(t.TempDir(), "nope.yaml"), &conf)
	assert.Regexp(t, "AE010000", err)
}

func TestReadAndParseYAMLFileReadFail(t *testing.T) {
	var conf AegisConfig
	// a directory stats fine but cannot be read as a file
	err := ReadAndParseYAMLFile(context.Background(), t.TempDir(), &conf)
	assert.Regexp(t, "AE010001", err)
}

func TestReadAndParseYAMLFileBadYAML(t *testing.T) {
	filePath := path.Join(t.TempDir(), "aegis.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte(`{!!! not yaml`), 0644))
	var conf AegisConfig
	err := ReadAndParseYAMLFile(context.Background(), filePath, &conf)
	assert.Regexp(t, "AE010002", err)
}

func TestReadAndParseYAMLFileOK(t *testing.T) {
	filePath := path.Join(t.TempDir(), "aegis.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte(`
db:
  type: sqlite
  sqlite:
    dsn: ":memory:"
security:
  keyStore:
    location: /var/aegis/primary.p12
    password: changeit
    keyAlias: aegis
  keyStoreMappings:
    - protocol: oauth
      keyStoreName: oauthStore
      useInAllTenants: true
tenants:
  static:
    tenantA.com: 1
`), 0644))
	var conf AegisConfig
	err := ReadAndParseYAMLFile(context.Background(), filePath, &conf)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", conf.DB.Type)
	assert.Equal(t, "/var/aegis/primary.p12", conf.Security.KeyStore.Location)
	require.Len(t, conf.Security.KeyStoreMappings, 1)
	assert.Equal(t, "oauth", conf.Security.KeyStoreMappings[0]["protocol"])
	assert.Equal(t, true, conf.Security.KeyStoreMappings[0]["useInAllTenants"])
	assert.Equal(t, int64(1), conf.Tenants.Static["tenantA.com"])
}
