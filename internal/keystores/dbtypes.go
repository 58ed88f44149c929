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

type DBTenantKeyStore struct {
	TenantID    int64  `gorm:"column:tenant_id;primaryKey"`
	Name        string `gorm:"column:name;primaryKey"`
	StoreType   string `gorm:"column:store_type"`
	Data        []byte `gorm:"column:data"`
	Password    string `gorm:"column:password"`
	KeyAlias    string `gorm:"column:key_alias"`
	KeyPassword string `gorm:"column:key_password"`
	Created     int64  `gorm:"column:created_at;autoCreateTime:nano"`
}

func (DBTenantKeyStore) TableName() string {
	return "tenant_keystores"
}
