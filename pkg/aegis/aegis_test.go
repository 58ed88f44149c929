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

package aegis

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kaleido-io/aegis/internal/keystores"
	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/kaleido-io/aegis/pkg/aegtypes"
	"github.com/kaleido-io/aegis/pkg/confutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
	"software.sslmate.com/src/go-pkcs12"
)

func newRSAKeyAndCert(t *testing.T, commonName string) (*rsa.PrivateKey, *x509.Certificate) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now().Add(-1 * time.Hour),
		NotAfter:     time.Now().Add(1 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, key.Public(), key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return key, cert
}

func writePKCS12File(t *testing.T, dir, filename string, key crypto.PrivateKey, cert *x509.Certificate, password string) string {
	data, err := pkcs12.Modern.Encode(key, cert, nil, password)
	require.NoError(t, err)
	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestAegisEndToEnd(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	primaryKey, primaryCert := newRSAKeyAndCert(t, "primary.example.com")
	oauthKey, oauthCert := newRSAKeyAndCert(t, "oauth.example.com")
	tenantKey, tenantCert := newRSAKeyAndCert(t, "tenanta.example.com")

	primaryPath := writePKCS12File(t, dir, "primary.p12", primaryKey, primaryCert, "primaryPass")
	oauthPath := writePKCS12File(t, dir, "oauth.p12", oauthKey, oauthCert, "oauthPass")

	tenantBundle, err := pkcs12.Modern.Encode(tenantKey, tenantCert, nil, "tPass")
	require.NoError(t, err)

	conf := &aegconf.AegisConfig{
		Log: aegconf.LogConfig{
			Level:  confutil.P("debug"),
			Output: confutil.P("stdout"),
		},
		DB: aegconf.DBConfig{
			Type: "sqlite",
			SQLite: aegconf.SQLiteConfig{
				SQLDBConfig: aegconf.SQLDBConfig{
					DSN:           ":memory:",
					AutoMigrate:   confutil.P(true),
					MigrationsDir: "../../db/migrations/sqlite",
				},
			},
		},
		Security: aegconf.SecurityConfig{
			KeyStore: aegconf.PrimaryKeyStoreConfig{
				Location: primaryPath,
				Password: "primaryPass",
				KeyAlias: "primarySigning",
			},
			CustomKeyStores: []aegconf.CustomKeyStoreConfig{
				{Name: "oauthStore", Location: oauthPath, Password: "oauthPass", KeyAlias: "oauthSigning"},
			},
			KeyStoreMappings: []map[string]any{
				{"protocol": "oauth", "keyStoreName": "oauthStore", "useInAllTenants": true},
				{"protocol": "saml", "keyStoreName": "samlStore", "useInAllTenants": true},
				{"protocol": "bogus"}, // skipped without failing startup
			},
		},
	}

	// Round-trip through a real YAML config file
	confData, err := yaml.Marshal(conf)
	require.NoError(t, err)
	configFile := filepath.Join(dir, "aegis.yaml")
	require.NoError(t, os.WriteFile(configFile, confData, 0600))

	a, err := NewFromConfigFile(ctx, configFile)
	require.NoError(t, err)
	defer a.Close()

	resolver := a.KeyStoreResolver()
	require.Len(t, resolver.Mappings(), 2) // oauth + retained (unhonored) saml

	// Register a tenant and its keystore
	tenantID, err := a.Tenants().EnsureTenant(ctx, "tenanta.com")
	require.NoError(t, err)
	require.GreaterOrEqual(t, tenantID, int64(1))
	err = a.KeyStores().RegisterTenantKeyStore(ctx, tenantID, &keystores.TenantKeyStore{
		Name:     aegtypes.TenantKeyStoreName("tenanta.com"),
		Data:     tenantBundle,
		Password: "tPass",
		KeyAlias: "tenanta.com",
	})
	require.NoError(t, err)

	// Primary tier: the default tenant uses the primary store
	key, err := resolver.ResolvePrivateKey(ctx, "default", aegtypes.ProtocolOIDC)
	require.NoError(t, err)
	assert.True(t, primaryKey.Equal(key.(*rsa.PrivateKey)))

	// Override tier: the OAuth mapping applies to every tenant
	key, err = resolver.ResolvePrivateKey(ctx, "tenanta.com", aegtypes.ProtocolOAuth)
	require.NoError(t, err)
	assert.True(t, oauthKey.Equal(key.(*rsa.PrivateKey)))

	// Tenant tier: an unmapped protocol uses the tenant's own store
	key, err = resolver.ResolvePrivateKey(ctx, "tenanta.com", aegtypes.ProtocolOIDC)
	require.NoError(t, err)
	assert.True(t, tenantKey.Equal(key.(*rsa.PrivateKey)))
	keyAgain, err := resolver.ResolvePrivateKey(ctx, "tenanta.com", aegtypes.ProtocolOIDC)
	require.NoError(t, err)
	assert.Same(t, key, keyAgain)

	// Reserved protocol: the SAML mapping is present but not honored
	key, err = resolver.ResolvePrivateKey(ctx, "default", aegtypes.ProtocolSAML)
	require.NoError(t, err)
	assert.True(t, primaryKey.Equal(key.(*rsa.PrivateKey)))

	// Certificates and public keys follow the same selection
	cert, err := resolver.ResolveCertificate(ctx, "tenanta.com", aegtypes.ProtocolOIDC)
	require.NoError(t, err)
	assert.True(t, tenantCert.Equal(cert))
	publicKey, err := resolver.ResolvePublicKey(ctx, "tenanta.com", aegtypes.ProtocolOIDC)
	require.NoError(t, err)
	assert.True(t, tenantKey.PublicKey.Equal(publicKey))

	// Names and configuration values
	name, err := resolver.ResolveKeyStoreName(ctx, "tenanta.com", aegtypes.ProtocolOAuth)
	require.NoError(t, err)
	assert.Equal(t, "custom/oauthStore", name)
	name, err = resolver.ResolveKeyStoreName(ctx, "tenanta.com", aegtypes.ProtocolOIDC)
	require.NoError(t, err)
	assert.Equal(t, "tenanta-com.p12", name)
	name, err = resolver.ResolveKeyStoreName(ctx, "default", aegtypes.ProtocolOIDC)
	require.NoError(t, err)
	assert.Equal(t, "primary.p12", name)

	value, err := resolver.ResolveConfigValue(ctx, "tenanta.com", aegtypes.ProtocolOIDC, aegtypes.KeyStoreConfigKeyAlias)
	require.NoError(t, err)
	assert.Equal(t, "tenanta.com", value)
	value, err = resolver.ResolveConfigValue(ctx, "default", aegtypes.ProtocolOIDC, aegtypes.KeyStoreConfigLocation)
	require.NoError(t, err)
	assert.Equal(t, primaryPath, value)
	value, err = resolver.ResolveConfigValue(ctx, "tenanta.com", aegtypes.ProtocolOAuth, aegtypes.KeyStoreConfigKeyAlias)
	require.NoError(t, err)
	assert.Equal(t, "oauthSigning", value)
}

func TestNewFromConfigFileMissing(t *testing.T) {
	_, err := NewFromConfigFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Regexp(t, "AE010000", err)
}

func TestNewBadDatabaseConfig(t *testing.T) {
	_, err := New(context.Background(), &aegconf.AegisConfig{
		DB: aegconf.DBConfig{Type: "oracle"},
	})
	assert.Regexp(t, "AE010600", err)
	assert.Regexp(t, "AE010100.*oracle", err)
}
