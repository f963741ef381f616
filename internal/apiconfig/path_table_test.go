// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func patterns(t PathTable) []string {
	out := make([]string, 0, len(t))
	for _, rule := range t {
		out = append(out, rule.Pattern)
	}
	return out
}

func TestPathTable_JSONKeepsOrder(t *testing.T) {
	const doc = `{
		"^/z": {"serializer": "groups"},
		"^/a": {"cors_max_age": 10},
		"^/m": {"serialize_groups": []}
	}`

	var table PathTable
	require.NoError(t, json.Unmarshal([]byte(doc), &table))

	assert.Equal(t, []string{"^/z", "^/a", "^/m"}, patterns(table))
	assert.Equal(t, "groups", *table[0].Serializer)
	assert.Equal(t, 10, *table[1].CorsMaxAge)
	assert.NotNil(t, table[2].Groups)
	assert.Empty(t, table[2].Groups)
}

func TestPathTable_YAMLKeepsOrder(t *testing.T) {
	const doc = `
^/z:
  serializer: groups
^/a:
  cors_allow_headers: [X-A]
"^/m$":
  cors_allow_origin_regex: ^https://m\.example$
`

	var table PathTable
	require.NoError(t, yaml.Unmarshal([]byte(doc), &table))

	assert.Equal(t, []string{"^/z", "^/a", "^/m$"}, patterns(table))
	assert.Equal(t, HeaderList{"X-A"}, table[1].CorsAllowHeaders)
	assert.Equal(t, `^https://m\.example$`, *table[2].CorsAllowOriginRegex)
}

func TestPathTable_ListForm(t *testing.T) {
	var fromJSON PathTable
	require.NoError(t, json.Unmarshal([]byte(`[{"pattern":"^/b","cors_max_age":1},{"pattern":"^/a"}]`), &fromJSON))
	assert.Equal(t, []string{"^/b", "^/a"}, patterns(fromJSON))
	assert.Equal(t, 1, *fromJSON[0].CorsMaxAge)

	var fromYAML PathTable
	require.NoError(t, yaml.Unmarshal([]byte("- pattern: ^/b\n  cors_max_age: 1\n- pattern: ^/a\n"), &fromYAML))
	assert.Equal(t, []string{"^/b", "^/a"}, patterns(fromYAML))
	assert.Equal(t, 1, *fromYAML[0].CorsMaxAge)
}

func TestPathTable_Null(t *testing.T) {
	var table PathTable
	require.NoError(t, json.Unmarshal([]byte(`null`), &table))
	assert.Nil(t, table)
}

func TestPathTable_Invalid(t *testing.T) {
	var table PathTable
	assert.ErrorIs(t, json.Unmarshal([]byte(`"^/a"`), &table), ErrInvalidPathTable)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"^/a": {"cors_max_age": "x"}}`), &table), ErrInvalidPathTable)
	assert.ErrorIs(t, yaml.Unmarshal([]byte(`just-a-string`), &table), ErrInvalidPathTable)
}
