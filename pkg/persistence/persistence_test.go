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
	"testing"

	"github.com/kaleido-io/aegis/pkg/aegconf"
	"github.com/stretchr/testify/assert"
)

func TestPersistenceTypes(t *testing.T) {
	ctx := context.Background()

	_, err := NewPersistence(ctx, &aegconf.DBConfig{})
	assert.Regexp(t, "AE010103", err)

	_, err = NewPersistence(ctx, &aegconf.DBConfig{Type: "sqlite"})
	assert.Regexp(t, "AE010103", err)

	_, err = NewPersistence(ctx, &aegconf.DBConfig{Type: "postgres"})
	assert.Regexp(t, "AE010103", err)

	// Different error for wrong case
	_, err = NewPersistence(ctx, &aegconf.DBConfig{Type: "wrong"})
	assert.Regexp(t, "AE010100.*wrong", err)

}
