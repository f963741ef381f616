// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"fmt"

	"github.com/goccy/go-json"
)

type jsonSerializer struct{}

// NewJSONSerializer returns the json_encode serializer.
func NewJSONSerializer() Serializer {
	return jsonSerializer{}
}

func (jsonSerializer) Serialize(v any, _ []string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return b, nil
}
