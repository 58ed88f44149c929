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
	"encoding/pem"
	"sort"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/aegis/internal/msgs"
	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/kaleido-io/aegis/pkg/log"
	"software.sslmate.com/src/go-pkcs12"
)

// loadedStore is the parsed, immutable form of one keystore. All mutation
// happens during parsing, before the store is cached or returned.
type loadedStore struct {
	name         string
	storeType    string
	defaultAlias string
	keys         map[string]crypto.PrivateKey
	certs        map[string]*x509.Certificate
	aliases      []string
}

func (ls *loadedStore) Name() string {
	return ls.name
}

func (ls *loadedStore) StoreType() string {
	return ls.storeType
}

func (ls *loadedStore) Aliases() []string {
	return ls.aliases
}

func (ls *loadedStore) Certificate(alias string) *x509.Certificate {
	if alias == "" {
		alias = ls.defaultAlias
	}
	return ls.certs[alias]
}

func (ls *loadedStore) PrivateKey(ctx context.Context, alias string) (crypto.PrivateKey, error) {
	if alias == "" {
		alias = ls.defaultAlias
		if alias == "" {
			return nil, i18n.NewError(ctx, msgs.MsgKeyStoreNoDefaultAlias, ls.name)
		}
	}
	key, found := ls.keys[alias]
	if !found {
		if _, isCertOnly := ls.certs[alias]; isCertOnly {
			return nil, i18n.NewError(ctx, msgs.MsgKeyStoreNoPrivateKey, ls.name, alias)
		}
		return nil, i18n.NewError(ctx, msgs.MsgKeyStoreAliasNotFound, alias, ls.name)
	}
	return key, nil
}

// The default alias is the configured one when set, otherwise it can only be
// inferred when the store holds exactly one key entry.
func (ls *loadedStore) finalize(configuredAlias string) *loadedStore {
	switch {
	case configuredAlias != "":
		ls.defaultAlias = configuredAlias
	case len(ls.keys) == 1:
		for alias := range ls.keys {
			ls.defaultAlias = alias
		}
	}
	seen := make(map[string]bool)
	for alias := range ls.keys {
		seen[alias] = true
		ls.aliases = append(ls.aliases, alias)
	}
	for alias := range ls.certs {
		if !seen[alias] {
			ls.aliases = append(ls.aliases, alias)
		}
	}
	sort.Strings(ls.aliases)
	return ls
}

func parseStore(ctx context.Context, name, storeType string, data []byte, password, keyAlias string) (*loadedStore, error) {
	switch storeType {
	case aegconf.KeyStoreTypePKCS12:
		return parsePKCS12(ctx, name, data, password, keyAlias)
	case aegconf.KeyStoreTypePEM:
		return parsePEM(ctx, name, data, keyAlias)
	default:
		return nil, i18n.NewError(ctx, msgs.MsgKeyStoreUnknownType, storeType, name)
	}
}

// A PKCS#12 bundle decodes to a single key entry with its certificate chain.
// The key entry is stored under the configured alias (falling back to the
// store name), and chain certificates are additionally addressable by their
// subject common name.
func parsePKCS12(ctx context.Context, name string, data []byte, password, keyAlias string) (*loadedStore, error) {
	key, leaf, caCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, msgs.MsgKeyStoreDecodeFailed, name)
	}
	alias := keyAlias
	if alias == "" {
		alias = name
	}
	ls := &loadedStore{
		name:      name,
		storeType: aegconf.KeyStoreTypePKCS12,
		keys:      map[string]crypto.PrivateKey{alias: key},
		certs:     map[string]*x509.Certificate{alias: leaf},
	}
	for _, ca := range caCerts {
		cn := ca.Subject.CommonName
		if cn != "" && ls.certs[cn] == nil {
			ls.certs[cn] = ca
		}
	}
	return ls.finalize(keyAlias), nil
}

// A PEM store is a concatenation of CERTIFICATE and private key blocks. Each
// block may name its entry with an 'alias' header; blocks without one share
// the configured alias (falling back to the store name). The first block of
// each kind wins an alias, so a leaf-first chain keeps the leaf.
func parsePEM(ctx context.Context, name string, data []byte, keyAlias string) (*loadedStore, error) {
	fallbackAlias := keyAlias
	if fallbackAlias == "" {
		fallbackAlias = name
	}
	ls := &loadedStore{
		name:      name,
		storeType: aegconf.KeyStoreTypePEM,
		keys:      make(map[string]crypto.PrivateKey),
		certs:     make(map[string]*x509.Certificate),
	}
	blocks := 0
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		blocks++
		alias := block.Headers["alias"]
		if alias == "" {
			alias = fallbackAlias
		}
		var key crypto.PrivateKey
		var err error
		switch block.Type {
		case "CERTIFICATE":
			var cert *x509.Certificate
			cert, err = x509.ParseCertificate(block.Bytes)
			if err == nil && ls.certs[alias] == nil {
				ls.certs[alias] = cert
			}
		case "PRIVATE KEY":
			key, err = x509.ParsePKCS8PrivateKey(block.Bytes)
		case "RSA PRIVATE KEY":
			key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
		case "EC PRIVATE KEY":
			key, err = x509.ParseECPrivateKey(block.Bytes)
		default:
			log.L(ctx).Debugf("Skipping %s block in keystore %s", block.Type, name)
		}
		if err != nil {
			return nil, i18n.WrapError(ctx, err, msgs.MsgKeyStoreDecodeFailed, name)
		}
		if key != nil && ls.keys[alias] == nil {
			ls.keys[alias] = key
		}
	}
	if blocks == 0 {
		return nil, i18n.NewError(ctx, msgs.MsgKeyStoreDecodeFailed, name)
	}
	return ls.finalize(keyAlias), nil
}
