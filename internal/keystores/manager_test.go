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

package keystores

import (
	"context"
	"crypto/rsa"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/kaleido-io/aegis/pkg/aegtypes"
	"github.com/kaleido-io/aegis/pkg/confutil"
	"github.com/kaleido-io/aegis/pkg/persistence"
	"github.com/kaleido-io/aegis/pkg/persistence/mockpersistence"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyStoreManager(t *testing.T, realDB bool, conf *aegconf.SecurityConfig) (context.Context, *keyStoreManager, sqlmock.Sqlmock, func()) {
	ctx, cancelCtx := context.WithCancel(context.Background())
	oldLevel := logrus.GetLevel()
	logrus.SetLevel(logrus.TraceLevel)

	var p persistence.Persistence
	var mdb sqlmock.Sqlmock
	var pDone func()
	if realDB {
		var err error
		p, pDone, err = persistence.NewUnitTestPersistence(ctx, "keystores")
		require.NoError(t, err)
	} else {
		mp, err := mockpersistence.NewSQLMockProvider()
		require.NoError(t, err)
		p = mp.P
		mdb = mp.Mock
		pDone = func() {
			require.NoError(t, mp.Mock.ExpectationsWereMet())
		}
	}

	ksm := NewKeyStoreManager(ctx, conf, p).(*keyStoreManager)
	return ctx, ksm, mdb, func() {
		logrus.SetLevel(oldLevel)
		cancelCtx()
		pDone()
	}
}

func TestPrimaryStoreLoadAndCache(t *testing.T) {
	key, cert := newRSAKeyAndCert(t, "primary.unit.test")
	location := filepath.Join(t.TempDir(), "primary.p12")
	require.NoError(t, os.WriteFile(location, newPKCS12Bundle(t, key, cert, nil, "sshh"), 0600))

	ctx, ksm, _, done := newTestKeyStoreManager(t, false, &aegconf.SecurityConfig{
		KeyStore: aegconf.PrimaryKeyStoreConfig{
			Location: location,
			Password: "sshh",
			KeyAlias: "primarySigning",
		},
	})
	defer done()

	provider, err := ksm.ProviderForTenant(ctx, aegtypes.DefaultTenantID)
	require.NoError(t, err)

	gotKey, err := provider.DefaultPrivateKey(ctx)
	require.NoError(t, err)
	assert.True(t, key.Equal(gotKey.(*rsa.PrivateKey)))

	gotCert, err := provider.DefaultCertificate(ctx)
	require.NoError(t, err)
	assert.True(t, cert.Equal(gotCert))

	handle, err := provider.PrimaryKeyStore(ctx)
	require.NoError(t, err)
	assert.Equal(t, aegtypes.DefaultTenantDomain, handle.Name())
	assert.Equal(t, aegconf.KeyStoreTypePKCS12, handle.StoreType())

	// Loaded stores are cached, so the file is only read once
	require.NoError(t, os.Remove(location))
	_, err = provider.DefaultPrivateKey(ctx)
	require.NoError(t, err)
}

func TestPrimaryStoreNotConfigured(t *testing.T) {
	ctx, ksm, _, done := newTestKeyStoreManager(t, false, &aegconf.SecurityConfig{})
	defer done()

	provider, err := ksm.ProviderForTenant(ctx, aegtypes.DefaultTenantID)
	require.NoError(t, err)
	_, err = provider.DefaultPrivateKey(ctx)
	assert.Regexp(t, "AE010309", err)
}

func TestPrimaryStoreFileMissing(t *testing.T) {
	ctx, ksm, _, done := newTestKeyStoreManager(t, false, &aegconf.SecurityConfig{
		KeyStore: aegconf.PrimaryKeyStoreConfig{
			Location: filepath.Join(t.TempDir(), "does-not-exist.p12"),
			Password: "sshh",
		},
	})
	defer done()

	provider, err := ksm.ProviderForTenant(ctx, aegtypes.DefaultTenantID)
	require.NoError(t, err)
	_, err = provider.PrimaryKeyStore(ctx)
	assert.Regexp(t, "AE010301", err)
}

func TestCustomStoreLoadAndConfig(t *testing.T) {
	key, cert := newRSAKeyAndCert(t, "oauth.unit.test")
	location := filepath.Join(t.TempDir(), "oauth.p12")
	require.NoError(t, os.WriteFile(location, newPKCS12Bundle(t, key, cert, nil, "oauthPass"), 0600))

	ctx, ksm, _, done := newTestKeyStoreManager(t, false, &aegconf.SecurityConfig{
		CustomKeyStores: []aegconf.CustomKeyStoreConfig{
			{Name: "oauthStore", Location: location, Password: "oauthPass", KeyAlias: "oauthSigning", KeyPassword: "oauthKeyPass"},
			{Name: "", Location: "/nowhere.p12"},                 // ignored: no name
			{Name: "oauthStore", Location: "/nowhere-else.p12"}, // ignored: duplicate
		},
	})
	defer done()

	provider, err := ksm.ProviderForTenant(ctx, 5)
	require.NoError(t, err)

	// The first oauthStore config won, so the store loads from the real file
	gotKey, err := provider.PrivateKey(ctx, "custom/oauthStore", "")
	require.NoError(t, err)
	assert.True(t, key.Equal(gotKey.(*rsa.PrivateKey)))

	gotCert, err := provider.Certificate(ctx, "custom/oauthStore", "")
	require.NoError(t, err)
	assert.True(t, cert.Equal(gotCert))

	handle, err := provider.KeyStore(ctx, "custom/oauthStore")
	require.NoError(t, err)
	assert.Equal(t, []string{"oauthSigning"}, handle.Aliases())

	for propertyName, expected := range map[string]string{
		aegtypes.KeyStoreConfigLocation:    location,
		aegtypes.KeyStoreConfigType:        aegconf.KeyStoreTypePKCS12,
		aegtypes.KeyStoreConfigPassword:    "oauthPass",
		aegtypes.KeyStoreConfigKeyAlias:    "oauthSigning",
		aegtypes.KeyStoreConfigKeyPassword: "oauthKeyPass",
	} {
		value, err := provider.CustomStoreConfig(ctx, "custom/oauthStore", propertyName)
		require.NoError(t, err)
		assert.Equal(t, expected, value, propertyName)
	}

	_, err = provider.CustomStoreConfig(ctx, "custom/oauthStore", "StorePath")
	assert.Regexp(t, "AE010307.*StorePath.*custom/oauthStore", err)

	_, err = provider.CustomStoreConfig(ctx, "custom/ghostStore", aegtypes.KeyStoreConfigType)
	assert.Regexp(t, "AE010306.*custom/ghostStore", err)

	_, err = provider.KeyStore(ctx, "custom/ghostStore")
	assert.Regexp(t, "AE010306.*custom/ghostStore", err)
}

func TestTenantStoreRegisterAndResolve(t *testing.T) {
	ctx, ksm, _, done := newTestKeyStoreManager(t, true, &aegconf.SecurityConfig{})
	defer done()

	key, cert := newRSAKeyAndCert(t, "tenantc.unit.test")
	storeName := aegtypes.TenantKeyStoreName("tenantC.com")
	err := ksm.RegisterTenantKeyStore(ctx, 3, &TenantKeyStore{
		Name:     storeName,
		Data:     newPKCS12Bundle(t, key, cert, nil, "tenantPass"),
		Password: "tenantPass",
		KeyAlias: "tenantC.com",
	})
	require.NoError(t, err)

	// A second registration under the same name is rejected
	err = ksm.RegisterTenantKeyStore(ctx, 3, &TenantKeyStore{
		Name:     storeName,
		Data:     newPKCS12Bundle(t, key, cert, nil, "tenantPass"),
		Password: "tenantPass",
	})
	assert.Regexp(t, "AE010310.*tenantC-com.p12", err)

	// The registering tenant resolves its material, aliased by domain
	provider, err := ksm.ProviderForTenant(ctx, 3)
	require.NoError(t, err)
	gotKey, err := provider.PrivateKey(ctx, storeName, "tenantC.com")
	require.NoError(t, err)
	assert.True(t, key.Equal(gotKey.(*rsa.PrivateKey)))
	gotCert, err := provider.Certificate(ctx, storeName, "tenantC.com")
	require.NoError(t, err)
	assert.True(t, cert.Equal(gotCert))

	// Registration populated the store cache, so the row is not needed again
	require.NoError(t, ksm.p.DB().Exec("DELETE FROM tenant_keystores").Error)
	_, err = provider.PrivateKey(ctx, storeName, "tenantC.com")
	require.NoError(t, err)

	// Another tenant has no view of it
	otherProvider, err := ksm.ProviderForTenant(ctx, 4)
	require.NoError(t, err)
	_, err = otherProvider.KeyStore(ctx, storeName)
	assert.Regexp(t, "AE010308.*tenantC-com.p12.*4", err)
}

func TestTenantStoreFetchParsesFromRow(t *testing.T) {
	ctx, ksm, _, done := newTestKeyStoreManager(t, true, &aegconf.SecurityConfig{
		StoreCache: aegconf.CacheConfig{Capacity: confutil.P(1)},
	})
	defer done()

	key1, cert1 := newRSAKeyAndCert(t, "one.unit.test")
	key2, cert2 := newRSAKeyAndCert(t, "two.unit.test")
	require.NoError(t, ksm.RegisterTenantKeyStore(ctx, 7, &TenantKeyStore{
		Name: "store-one.p12", Data: newPKCS12Bundle(t, key1, cert1, nil, "p1"), Password: "p1", KeyAlias: "one",
	}))
	require.NoError(t, ksm.RegisterTenantKeyStore(ctx, 7, &TenantKeyStore{
		Name: "store-two.p12", Data: newPKCS12Bundle(t, key2, cert2, nil, "p2"), Password: "p2", KeyAlias: "two",
	}))

	// Cache capacity 1: store-one was evicted, so this re-parses from the DB
	provider, err := ksm.ProviderForTenant(ctx, 7)
	require.NoError(t, err)
	gotKey, err := provider.PrivateKey(ctx, "store-one.p12", "one")
	require.NoError(t, err)
	assert.True(t, key1.Equal(gotKey.(*rsa.PrivateKey)))
}

func TestRegisterTenantKeyStoreValidation(t *testing.T) {
	ctx, ksm, _, done := newTestKeyStoreManager(t, false, &aegconf.SecurityConfig{})
	defer done()

	err := ksm.RegisterTenantKeyStore(ctx, 0, &TenantKeyStore{Name: "store.p12"})
	assert.Regexp(t, "AE010312.*0", err)

	err = ksm.RegisterTenantKeyStore(ctx, 3, &TenantKeyStore{Name: "-bad-"})
	assert.Regexp(t, "AE010500.*name", err)

	// Corrupt material is rejected before anything is written
	err = ksm.RegisterTenantKeyStore(ctx, 3, &TenantKeyStore{Name: "store.p12", Data: []byte("junk")})
	assert.Regexp(t, "AE010302.*store.p12", err)

	err = ksm.RegisterTenantKeyStore(ctx, 3, &TenantKeyStore{Name: "store.jks", StoreType: "jks"})
	assert.Regexp(t, "AE010300.*jks", err)

	_, err = ksm.ProviderForTenant(ctx, -1)
	assert.Regexp(t, "AE010312", err)
}

func TestTenantStoreNotForDefaultTenant(t *testing.T) {
	ctx, ksm, _, done := newTestKeyStoreManager(t, false, &aegconf.SecurityConfig{})
	defer done()

	// A non-custom store name for the default tenant is a tenant-store
	// lookup, and the default tenant has none
	provider, err := ksm.ProviderForTenant(ctx, aegtypes.DefaultTenantID)
	require.NoError(t, err)
	_, err = provider.KeyStore(ctx, "someStore.p12")
	assert.Regexp(t, "AE010308.*someStore.p12", err)
}
