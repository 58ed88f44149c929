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
	"crypto"
	"crypto/x509"
	"os"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/aegis/internal/components"
	"github.com/kaleido-io/aegis/internal/msgs"
	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/kaleido-io/aegis/pkg/aegtypes"
	"github.com/kaleido-io/aegis/pkg/cache"
	"github.com/kaleido-io/aegis/pkg/confutil"
	"github.com/kaleido-io/aegis/pkg/log"
	"github.com/kaleido-io/aegis/pkg/persistence"
)

// KeyStoreManager loads and caches keystores from their three sources: the
// primary keystore file, custom keystore files addressed by prefixed name,
// and per-tenant keystores held in the registry database.
type KeyStoreManager interface {
	components.KeyMaterialProviderFactory

	// RegisterTenantKeyStore validates and stores keystore material for a
	// tenant. The material is decoded before it is written, so a corrupt
	// bundle never reaches the database.
	RegisterTenantKeyStore(ctx context.Context, tenantID int64, spec *TenantKeyStore) error
}

// TenantKeyStore is the registration input for one tenant keystore.
type TenantKeyStore struct {
	Name        string `json:"name"`
	StoreType   string `json:"storeType,omitempty"` // defaults to pkcs12
	Data        []byte `json:"data"`
	Password    string `json:"password,omitempty"`
	KeyAlias    string `json:"keyAlias,omitempty"`
	KeyPassword string `json:"keyPassword,omitempty"`
}

// Primary and custom stores cache under the default tenant id, with the
// custom/ prefix keeping custom names disjoint from the primary's empty name.
// Tenant stores only exist for ids >= 1, so the key space cannot collide.
type storeCacheKey struct {
	tenantID int64
	name     string
}

type keyStoreManager struct {
	bgCtx  context.Context
	conf   *aegconf.SecurityConfig
	p      persistence.Persistence
	custom map[string]*aegconf.CustomKeyStoreConfig
	stores cache.Cache[storeCacheKey, components.KeyStoreHandle]
}

func NewKeyStoreManager(bgCtx context.Context, conf *aegconf.SecurityConfig, p persistence.Persistence) KeyStoreManager {
	ksm := &keyStoreManager{
		bgCtx:  bgCtx,
		conf:   conf,
		p:      p,
		custom: make(map[string]*aegconf.CustomKeyStoreConfig),
		stores: cache.NewCache[storeCacheKey, components.KeyStoreHandle](&conf.StoreCache, aegconf.StoreCacheDefaults),
	}
	for i := range conf.CustomKeyStores {
		c := &conf.CustomKeyStores[i]
		switch {
		case c.Name == "":
			log.L(bgCtx).Warnf("Ignoring custom keystore config with no name (location %s)", c.Location)
		case ksm.custom[c.Name] != nil:
			log.L(bgCtx).Warnf("Duplicate custom keystore config for %s. Second config ignored", c.Name)
		default:
			ksm.custom[c.Name] = c
		}
	}
	return ksm
}

func (ksm *keyStoreManager) ProviderForTenant(ctx context.Context, tenantID int64) (components.KeyMaterialProvider, error) {
	if tenantID < aegtypes.DefaultTenantID {
		return nil, i18n.NewError(ctx, msgs.MsgKeyStoreInvalidTenantID, tenantID)
	}
	return &tenantProvider{ksm: ksm, tenantID: tenantID}, nil
}

func (ksm *keyStoreManager) RegisterTenantKeyStore(ctx context.Context, tenantID int64, spec *TenantKeyStore) error {
	if tenantID < 1 {
		return i18n.NewError(ctx, msgs.MsgKeyStoreInvalidTenantID, tenantID)
	}
	if err := aegtypes.ValidateSafeCharsStartEndAlphaNum(ctx, spec.Name, aegtypes.DefaultNameMaxLen, "name"); err != nil {
		return err
	}
	storeType := spec.StoreType
	if storeType == "" {
		storeType = aegconf.KeyStoreTypePKCS12
	}
	handle, err := parseStore(ctx, spec.Name, storeType, spec.Data, spec.Password, spec.KeyAlias)
	if err != nil {
		return err
	}
	err = ksm.p.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) error {
		var existing []*DBTenantKeyStore
		err := dbTX.DB().
			WithContext(ctx).
			Where("tenant_id = ?", tenantID).
			Where("name = ?", spec.Name).
			Limit(1).
			Find(&existing).
			Error
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return i18n.NewError(ctx, msgs.MsgKeyStoreAlreadyRegistered, spec.Name, tenantID)
		}
		err = dbTX.DB().
			WithContext(ctx).
			Create(&DBTenantKeyStore{
				TenantID:    tenantID,
				Name:        spec.Name,
				StoreType:   storeType,
				Data:        spec.Data,
				Password:    spec.Password,
				KeyAlias:    spec.KeyAlias,
				KeyPassword: spec.KeyPassword,
			}).
			Error
		if err != nil {
			return err
		}
		dbTX.AddPostCommit(func(ctx context.Context) {
			ksm.stores.Set(storeCacheKey{tenantID: tenantID, name: spec.Name}, handle)
			log.L(ctx).Infof("Registered %s keystore %s for tenant %d", storeType, spec.Name, tenantID)
		})
		return nil
	})
	return err
}

func (ksm *keyStoreManager) primaryStore(ctx context.Context) (components.KeyStoreHandle, error) {
	key := storeCacheKey{tenantID: aegtypes.DefaultTenantID}
	if handle, isCached := ksm.stores.Get(key); isCached {
		return handle, nil
	}
	kc := &ksm.conf.KeyStore
	if kc.Location == "" {
		return nil, i18n.NewError(ctx, msgs.MsgKeyStorePrimaryNotConfigured)
	}
	storeType := confutil.StringNotEmpty(kc.Type, *aegconf.KeyStoreDefaults.Type)
	handle, err := ksm.loadStoreFile(ctx, aegtypes.DefaultTenantDomain, kc.Location, storeType, kc.Password, kc.KeyAlias)
	if err != nil {
		return nil, err
	}
	ksm.stores.Set(key, handle)
	return handle, nil
}

func (ksm *keyStoreManager) customStore(ctx context.Context, name string) (components.KeyStoreHandle, error) {
	bareName := aegtypes.StripCustomKeyStorePrefix(name)
	key := storeCacheKey{tenantID: aegtypes.DefaultTenantID, name: aegtypes.CustomKeyStoreName(bareName)}
	if handle, isCached := ksm.stores.Get(key); isCached {
		return handle, nil
	}
	c := ksm.custom[bareName]
	if c == nil {
		return nil, i18n.NewError(ctx, msgs.MsgKeyStoreCustomNotConfigured, aegtypes.CustomKeyStoreName(bareName))
	}
	storeType := confutil.StringNotEmpty(c.Type, *aegconf.KeyStoreDefaults.Type)
	handle, err := ksm.loadStoreFile(ctx, bareName, c.Location, storeType, c.Password, c.KeyAlias)
	if err != nil {
		return nil, err
	}
	ksm.stores.Set(key, handle)
	return handle, nil
}

func (ksm *keyStoreManager) tenantStore(ctx context.Context, tenantID int64, name string) (components.KeyStoreHandle, error) {
	if tenantID < 1 {
		return nil, i18n.NewError(ctx, msgs.MsgKeyStoreTenantStoreNotFound, name, tenantID)
	}
	key := storeCacheKey{tenantID: tenantID, name: name}
	if handle, isCached := ksm.stores.Get(key); isCached {
		return handle, nil
	}
	var rows []*DBTenantKeyStore
	err := ksm.p.DB().
		WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("name = ?", name).
		Limit(1).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgKeyStoreTenantStoreNotFound, name, tenantID)
	}
	row := rows[0]
	storeType := row.StoreType
	if storeType == "" {
		storeType = aegconf.KeyStoreTypePKCS12
	}
	handle, err := parseStore(ctx, row.Name, storeType, row.Data, row.Password, row.KeyAlias)
	if err != nil {
		return nil, err
	}
	ksm.stores.Set(key, handle)
	return handle, nil
}

func (ksm *keyStoreManager) loadStoreFile(ctx context.Context, name, location, storeType, password, keyAlias string) (components.KeyStoreHandle, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgKeyStoreFileReadFailed, location)
	}
	log.L(ctx).Debugf("Loaded %s keystore %s from %s (%d bytes)", storeType, name, location, len(data))
	return parseStore(ctx, name, storeType, data, password, keyAlias)
}

type tenantProvider struct {
	ksm      *keyStoreManager
	tenantID int64
}

func (tp *tenantProvider) PrimaryKeyStore(ctx context.Context) (components.KeyStoreHandle, error) {
	return tp.ksm.primaryStore(ctx)
}

func (tp *tenantProvider) KeyStore(ctx context.Context, name string) (components.KeyStoreHandle, error) {
	if aegtypes.IsCustomKeyStoreName(name) {
		return tp.ksm.customStore(ctx, name)
	}
	return tp.ksm.tenantStore(ctx, tp.tenantID, name)
}

func (tp *tenantProvider) DefaultPrivateKey(ctx context.Context) (crypto.PrivateKey, error) {
	handle, err := tp.PrimaryKeyStore(ctx)
	if err != nil {
		return nil, err
	}
	return handle.PrivateKey(ctx, "")
}

func (tp *tenantProvider) PrivateKey(ctx context.Context, storeName, aliasHint string) (crypto.PrivateKey, error) {
	handle, err := tp.storeHandle(ctx, storeName)
	if err != nil {
		return nil, err
	}
	return handle.PrivateKey(ctx, aliasHint)
}

func (tp *tenantProvider) DefaultCertificate(ctx context.Context) (*x509.Certificate, error) {
	handle, err := tp.PrimaryKeyStore(ctx)
	if err != nil {
		return nil, err
	}
	return certificateOrError(ctx, handle, "")
}

func (tp *tenantProvider) Certificate(ctx context.Context, storeName, aliasHint string) (*x509.Certificate, error) {
	handle, err := tp.storeHandle(ctx, storeName)
	if err != nil {
		return nil, err
	}
	return certificateOrError(ctx, handle, aliasHint)
}

func (tp *tenantProvider) CustomStoreConfig(ctx context.Context, storeName, propertyName string) (string, error) {
	bareName := aegtypes.StripCustomKeyStorePrefix(storeName)
	c := tp.ksm.custom[bareName]
	if c == nil {
		return "", i18n.NewError(ctx, msgs.MsgKeyStoreCustomNotConfigured, aegtypes.CustomKeyStoreName(bareName))
	}
	switch propertyName {
	case aegtypes.KeyStoreConfigLocation:
		return c.Location, nil
	case aegtypes.KeyStoreConfigType:
		return confutil.StringNotEmpty(c.Type, *aegconf.KeyStoreDefaults.Type), nil
	case aegtypes.KeyStoreConfigPassword:
		return c.Password, nil
	case aegtypes.KeyStoreConfigKeyAlias:
		return c.KeyAlias, nil
	case aegtypes.KeyStoreConfigKeyPassword:
		return c.KeyPassword, nil
	default:
		return "", i18n.NewError(ctx, msgs.MsgKeyStoreCustomConfigUnknown, propertyName, aegtypes.CustomKeyStoreName(bareName))
	}
}

func (tp *tenantProvider) storeHandle(ctx context.Context, storeName string) (components.KeyStoreHandle, error) {
	if storeName == "" {
		return tp.PrimaryKeyStore(ctx)
	}
	return tp.KeyStore(ctx, storeName)
}

func certificateOrError(ctx context.Context, handle components.KeyStoreHandle, aliasHint string) (*x509.Certificate, error) {
	cert := handle.Certificate(aliasHint)
	if cert == nil {
		alias := aliasHint
		if alias == "" {
			alias = "default"
		}
		return nil, i18n.NewError(ctx, msgs.MsgKeyStoreNoCertificate, handle.Name(), alias)
	}
	return cert, nil
}
