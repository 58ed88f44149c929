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

package aegtypes

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandHex(t *testing.T) {
	r1 := RandHex(32)
	assert.Len(t, r1, 64)
	b, err := hex.DecodeString(r1)
	require.NoError(t, err)
	assert.Len(t, b, 32)
	assert.NotEqual(t, r1, RandHex(32))
}

func TestRandBytesBadReader(t *testing.T) {
	defer func() {
		randReader = rand.Reader
		assert.NotNil(t, recover())
	}()
	randReader = iotest.ErrReader(errors.New("pop"))
	RandBytes(32)
}
