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

package confutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	assert.Equal(t, 10, Int(nil, 10))
	assert.Equal(t, 5, Int(P(5), 10))
}

func TestIntMin(t *testing.T) {
	assert.Equal(t, 10, IntMin(nil, 1, 10))
	assert.Equal(t, 1, IntMin(P(-5), 1, 10))
	assert.Equal(t, 5, IntMin(P(5), 1, 10))
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(nil, true))
	assert.False(t, Bool(P(false), true))
}

func TestStringNotEmpty(t *testing.T) {
	assert.Equal(t, "def", StringNotEmpty(nil, "def"))
	assert.Equal(t, "def", StringNotEmpty(P(""), "def"))
	assert.Equal(t, "set", StringNotEmpty(P("set"), "def"))
}

func TestStringOrEmpty(t *testing.T) {
	assert.Equal(t, "def", StringOrEmpty(nil, "def"))
	assert.Equal(t, "", StringOrEmpty(P(""), "def"))
}

func TestDurationMin(t *testing.T) {
	assert.Equal(t, 30*time.Second, DurationMin(nil, 0, "30s"))
	assert.Equal(t, 30*time.Second, DurationMin(P("wrong"), 0, "30s"))
	assert.Equal(t, 1*time.Second, DurationMin(P("1ms"), 1*time.Second, "30s"))
	assert.Equal(t, 10*time.Second, DurationMin(P("10s"), 1*time.Second, "30s"))
}

func TestByteSize(t *testing.T) {
	assert.Equal(t, int64(1024*1024), ByteSize(nil, 0, "1Mb"))
	assert.Equal(t, int64(1024*1024), ByteSize(P("wrong"), 0, "1Mb"))
	assert.Equal(t, int64(1024), ByteSize(P("10b"), 1024, "1Mb"))
	assert.Equal(t, int64(10*1024*1024*1024), ByteSize(P("10Gb"), 0, "1Mb"))
}
