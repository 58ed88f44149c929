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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/aegis/internal/components"
	"github.com/kaleido-io/aegis/internal/keyresolver"
	"github.com/kaleido-io/aegis/internal/keystores"
	"github.com/kaleido-io/aegis/internal/msgs"
	"github.com/kaleido-io/aegis/internal/tenants"
	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/kaleido-io/aegis/pkg/log"
	"github.com/kaleido-io/aegis/pkg/persistence"
)

// Aegis is the explicit context object owning all key-service state for one
// process: the resolver with its credential caches, the tenant registry, the
// keystore manager and the database they share. Construct it once at startup
// and hand it to every caller - there is no ambient singleton, so tests and
// embedders get fully isolated instances.
type Aegis interface {
	KeyStoreResolver() components.KeyStoreResolver
	Tenants() tenants.TenantRegistry
	KeyStores() keystores.KeyStoreManager
	Persistence() persistence.Persistence
	Close()
}

type aegis struct {
	bgCtx     context.Context
	conf      *aegconf.AegisConfig
	p         persistence.Persistence
	tenants   tenants.TenantRegistry
	keyStores keystores.KeyStoreManager
	resolver  components.KeyStoreResolver
}

// New wires the full service from parsed configuration. Construction is
// eager: configuration and database problems fail here, and a returned Aegis
// needs no further initialization.
func New(bgCtx context.Context, conf *aegconf.AegisConfig) (_ Aegis, err error) {
	log.InitConfig(&conf.Log)
	ctx := log.WithLogField(bgCtx, "role", "aegis")

	a := &aegis{
		bgCtx: ctx,
		conf:  conf,
	}
	if a.p, err = persistence.NewPersistence(ctx, &conf.DB); err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgAegisPersistenceInitFailed)
	}
	serverProps, err := aegconf.NewServerProperties(conf)
	if err != nil {
		a.p.Close()
		return nil, err
	}
	a.tenants = tenants.NewTenantRegistry(ctx, &conf.Tenants, a.p)
	a.keyStores = keystores.NewKeyStoreManager(ctx, &conf.Security, a.p)
	a.resolver = keyresolver.NewKeyStoreResolver(ctx, &conf.Security, serverProps, a.tenants, a.keyStores)

	log.L(ctx).Infof("Aegis key services initialized (%d protocol mappings)", len(a.resolver.Mappings()))
	return a, nil
}

// NewFromConfigFile loads and parses the YAML configuration file, then wires
// the service from it.
func NewFromConfigFile(bgCtx context.Context, configFile string) (Aegis, error) {
	var conf aegconf.AegisConfig
	if err := aegconf.ReadAndParseYAMLFile(bgCtx, configFile, &conf); err != nil {
		return nil, err
	}
	return New(bgCtx, &conf)
}

func (a *aegis) KeyStoreResolver() components.KeyStoreResolver {
	return a.resolver
}

func (a *aegis) Tenants() tenants.TenantRegistry {
	return a.tenants
}

func (a *aegis) KeyStores() keystores.KeyStoreManager {
	return a.keyStores
}

func (a *aegis) Persistence() persistence.Persistence {
	return a.p
}

func (a *aegis) Close() {
	log.L(a.bgCtx).Infof("Aegis key services stopped")
	a.p.Close()
}
