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

package persistence

import (
	"context"

	"gorm.io/gorm"
)

type DBTX interface {
	// Access the Gorm DB object for the transaction
	DB() *gorm.DB
	// False when this is the pseudo-transaction returned by NOTX()
	FullTransaction() bool
	// Functions to be run at the end of the transaction, before it has committed. An error from these will cause a rollback of the transaction itself
	AddPreCommit(func(ctx context.Context, tx DBTX) error)
	// Only called after a transaction is successfully committed - useful for triggering other actions that are conditional on new data
	AddPostCommit(func(ctx context.Context))
	// Called after the transaction rolls back, with the chance to replace the error that propagates to the caller
	AddPostRollback(func(ctx context.Context, err error) error)
	// Called in all cases (including panic cases) AFTER the transaction commits, to release resources. An error indicates the transaction rolled back. Can be used as a post-commit too by checking err==nil.
	AddFinalizer(func(ctx context.Context, err error))
}

type transaction struct {
	txCtx         context.Context
	gdb           *gorm.DB
	preCommits    []func(ctx context.Context, tx DBTX) error
	postCommits   []func(ctx context.Context)
	postRollbacks []func(ctx context.Context, err error) error
	finalizers    []func(ctx context.Context, err error)
}

func (t *transaction) DB() *gorm.DB {
	return t.gdb
}

func (t *transaction) FullTransaction() bool {
	return true
}

func (t *transaction) AddPreCommit(fn func(ctx context.Context, tx DBTX) error) {
	t.preCommits = append(t.preCommits, fn)
}

func (t *transaction) AddPostCommit(fn func(ctx context.Context)) {
	t.postCommits = append(t.postCommits, fn)
}

func (t *transaction) AddPostRollback(fn func(ctx context.Context, err error) error) {
	t.postRollbacks = append(t.postRollbacks, fn)
}

func (t *transaction) AddFinalizer(fn func(ctx context.Context, err error)) {
	t.finalizers = append(t.finalizers, fn)
}

// notx runs individual statements without a wrapping transaction, so none of
// the commit/rollback hooks can ever fire. Attempting to register one is a
// programming error.
type notx struct {
	gdb *gorm.DB
}

func newNOTX(gdb *gorm.DB) DBTX {
	return &notx{gdb: gdb}
}

func (t *notx) DB() *gorm.DB {
	return t.gdb
}

func (t *notx) FullTransaction() bool {
	return false
}

func (t *notx) AddPreCommit(func(ctx context.Context, tx DBTX) error) {
	panic("pre-commit hook registered outside of a transaction")
}

func (t *notx) AddPostCommit(func(ctx context.Context)) {
	panic("post-commit hook registered outside of a transaction")
}

func (t *notx) AddPostRollback(func(ctx context.Context, err error) error) {
	panic("post-rollback hook registered outside of a transaction")
}

func (t *notx) AddFinalizer(func(ctx context.Context, err error)) {
	panic("finalizer registered outside of a transaction")
}
