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

package tenants

import (
	"context"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/aegis/internal/components"
	"github.com/kaleido-io/aegis/internal/msgs"
	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/kaleido-io/aegis/pkg/aegtypes"
	"github.com/kaleido-io/aegis/pkg/cache"
	"github.com/kaleido-io/aegis/pkg/log"
	"github.com/kaleido-io/aegis/pkg/persistence"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TenantRegistry maps tenant domains to their numeric ids.
//
// The default tenant domain always resolves to aegtypes.DefaultTenantID
// without touching storage. Other domains resolve through the static
// configuration map first, then the id cache, then the database.
type TenantRegistry interface {
	components.TenantResolver

	// EnsureTenant registers the tenant domain if it is not already known,
	// and returns its id. Safe to call concurrently for the same domain.
	EnsureTenant(ctx context.Context, tenantDomain string) (int64, error)
}

type tenantRegistry struct {
	bgCtx   context.Context
	conf    *aegconf.TenantsConfig
	p       persistence.Persistence
	static  map[string]int64
	idCache cache.Cache[string, int64]
}

func NewTenantRegistry(bgCtx context.Context, conf *aegconf.TenantsConfig, p persistence.Persistence) TenantRegistry {
	tr := &tenantRegistry{
		bgCtx:   bgCtx,
		conf:    conf,
		p:       p,
		static:  make(map[string]int64),
		idCache: cache.NewCache[string, int64](&conf.Cache, &aegconf.TenantsDefaults.Cache),
	}
	for domain, id := range conf.Static {
		tr.static[normalizeDomain(domain)] = id
	}
	return tr
}

// Domains are matched case insensitively, as they are in DNS.
func normalizeDomain(tenantDomain string) string {
	return strings.ToLower(strings.TrimSpace(tenantDomain))
}

func (tr *tenantRegistry) TenantID(ctx context.Context, tenantDomain string) (int64, error) {
	domain := normalizeDomain(tenantDomain)
	if domain == aegtypes.DefaultTenantDomain {
		return aegtypes.DefaultTenantID, nil
	}
	if id, isStatic := tr.static[domain]; isStatic {
		return id, nil
	}
	if id, isCached := tr.idCache.Get(domain); isCached {
		return id, nil
	}
	if domain == "" {
		return -1, i18n.NewError(ctx, msgs.MsgTenantUnknownDomain, tenantDomain)
	}
	var rows []*DBTenant
	err := tr.p.DB().
		WithContext(ctx).
		Where("domain = ?", domain).
		Limit(1).
		Find(&rows).
		Error
	if err != nil {
		return -1, err
	}
	if len(rows) == 0 {
		return -1, i18n.NewError(ctx, msgs.MsgTenantUnknownDomain, tenantDomain)
	}
	tr.idCache.Set(domain, rows[0].ID)
	return rows[0].ID, nil
}

func (tr *tenantRegistry) EnsureTenant(ctx context.Context, tenantDomain string) (int64, error) {
	domain := normalizeDomain(tenantDomain)
	if domain == aegtypes.DefaultTenantDomain {
		return aegtypes.DefaultTenantID, nil
	}
	if id, isStatic := tr.static[domain]; isStatic {
		return id, nil
	}
	if err := aegtypes.ValidateSafeCharsStartEndAlphaNum(ctx, domain, aegtypes.DefaultNameMaxLen, "tenantDomain"); err != nil {
		return -1, err
	}

	var tenant *DBTenant
	err := tr.p.Transaction(ctx, func(ctx context.Context, dbTX persistence.DBTX) error {
		res := dbTX.DB().
			WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "domain"}},
				DoNothing: true,
			}).
			Create(&DBTenant{Domain: domain})
		if res.Error != nil {
			return res.Error
		}
		created := res.RowsAffected == 1

		// Re-read in the same transaction, so the conflict path returns the
		// id of the row that won the race
		var rows []*DBTenant
		err := dbTX.DB().
			WithContext(ctx).
			Where("domain = ?", domain).
			Limit(1).
			Find(&rows).
			Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return gorm.ErrRecordNotFound
		}
		tenant = rows[0]
		dbTX.AddPostCommit(func(ctx context.Context) {
			tr.idCache.Set(domain, tenant.ID)
			if created {
				log.L(ctx).Infof("Registered tenant domain %s with id %d", domain, tenant.ID)
			}
		})
		return nil
	})
	if err != nil {
		return -1, i18n.WrapError(ctx, err, msgs.MsgTenantRegistrationFailed, tenantDomain)
	}
	return tenant.ID, nil
}
