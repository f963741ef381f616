// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PathRule binds a URL path regular expression to the settings applied
// when a request path matches it.
type PathRule struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Record  `yaml:",inline"`
}

// PathTable is the ordered list of path rules. Order is declaration order and
// only the first matching rule is ever applied.
//
// In configuration files the table is normally written as an object/mapping
// keyed by pattern; key order is preserved. A list of rules carrying an
// explicit "pattern" key is accepted as well.
type PathTable []PathRule

// UnmarshalJSON decodes an object keyed by pattern, keeping key order, or a
// list of rules.
func (t *PathTable) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPathTable, err)
	}

	switch tok {
	case nil:
		*t = nil
		return nil
	case json.Delim('['):
		var rules []PathRule
		if err := json.Unmarshal(b, &rules); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPathTable, err)
		}
		*t = rules
		return nil
	case json.Delim('{'):
	default:
		return fmt.Errorf("%w: unexpected token %v", ErrInvalidPathTable, tok)
	}

	table := PathTable{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPathTable, err)
		}
		pattern, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected key %v", ErrInvalidPathTable, keyTok)
		}

		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("%w: pattern %q: %w", ErrInvalidPathTable, pattern, err)
		}
		table = append(table, PathRule{Pattern: pattern, Record: rec})
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPathTable, err)
	}

	*t = table
	return nil
}

// UnmarshalYAML decodes a mapping keyed by pattern, keeping key order, or a
// sequence of rules.
func (t *PathTable) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var rules []PathRule
		if err := node.Decode(&rules); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPathTable, err)
		}
		*t = rules
		return nil
	case yaml.MappingNode:
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*t = nil
			return nil
		}
		return fmt.Errorf("%w: line %d", ErrInvalidPathTable, node.Line)
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidPathTable, node.Line)
	}

	table := make(PathTable, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var rec Record
		if err := value.Decode(&rec); err != nil {
			return fmt.Errorf("%w: pattern %q: %w", ErrInvalidPathTable, key.Value, err)
		}
		table = append(table, PathRule{Pattern: key.Value, Record: rec})
	}

	*t = table
	return nil
}
