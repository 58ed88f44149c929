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

package aegconf

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ServerProperties is a flat, dotted-path view over the parsed configuration
// document, for callers that address settings by path (such as
// "Security.KeyStore.Location") rather than through the typed structs.
// Paths are matched case-insensitively.
type ServerProperties interface {
	FirstProperty(path string) string
}

type serverProperties struct {
	props map[string]string
}

// NewServerProperties flattens a configuration tree. Nested objects join
// their keys with '.'; for arrays the first element is taken.
func NewServerProperties(conf interface{}) (ServerProperties, error) {
	data, err := json.Marshal(conf)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	sp := &serverProperties{props: make(map[string]string)}
	sp.flatten("", tree)
	return sp, nil
}

func (sp *serverProperties) flatten(prefix string, node any) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			path := strings.ToLower(key)
			if prefix != "" {
				path = prefix + "." + path
			}
			sp.flatten(path, child)
		}
	case []any:
		if len(v) > 0 {
			sp.flatten(prefix, v[0])
		}
	case string:
		sp.props[prefix] = v
	case bool:
		sp.props[prefix] = strconv.FormatBool(v)
	case float64:
		sp.props[prefix] = strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func (sp *serverProperties) FirstProperty(path string) string {
	return sp.props[strings.ToLower(path)]
}
