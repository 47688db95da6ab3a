package tablefile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"enumkit/enumlike"
	"enumkit/internal/diagnostic"
)

// LoadFile loads and parses a YAML table file from the given path.
func LoadFile[V any](path string) (*enumlike.Table[string, V], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file %s: %w", path, err)
	}

	t, diags := Decode[V](path, data)
	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse table file %s: %w", path, err)
	}

	return t, nil
}

// Parse parses YAML data into a table.
func Parse[V any](data []byte) (*enumlike.Table[string, V], error) {
	t, diags := Decode[V]("", data)
	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse table YAML: %w", err)
	}

	return t, nil
}

// Decode parses YAML data into a table and returns everything it found
// wrong with it. The table is nil when there are errors. name labels the
// diagnostics.
func Decode[V any](name string, data []byte) (*enumlike.Table[string, V], diagnostic.Diagnostics) {
	var (
		doc   yaml.Node
		diags diagnostic.Diagnostics
	)

	if err := yaml.Unmarshal(data, &doc); err != nil {
		diags.AddError(diagnostic.CodeDecode, err.Error(), name, "", 0)
		return nil, diags
	}

	// empty document
	if len(doc.Content) == 0 {
		return enumlike.New[string, V](), diags
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		diags.AddError(diagnostic.CodeNotMapping,
			fmt.Sprintf("expected a mapping at the top level, got %s", kindName(root.Kind)),
			name, "", root.Line)

		return nil, diags
	}

	pairs := make([]enumlike.Pair[string, V], 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			diags.AddError(diagnostic.CodeDecode,
				fmt.Sprintf("key must be a scalar, got %s", kindName(keyNode.Kind)),
				name, "", keyNode.Line)

			continue
		}

		key := keyNode.Value
		if key == "" {
			diags.AddWarning(diagnostic.CodeEmptyKey, "empty key", name, key, keyNode.Line)
		}

		if line, dup := seen[key]; dup {
			diags.AddError(diagnostic.CodeDuplicateKey,
				fmt.Sprintf("key %q already defined at line %d", key, line),
				name, key, keyNode.Line)

			continue
		}

		seen[key] = keyNode.Line

		var value V
		if err := valueNode.Decode(&value); err != nil {
			diags.AddError(diagnostic.CodeDecode, err.Error(), name, key, valueNode.Line)
			continue
		}

		pairs = append(pairs, enumlike.P(key, value))
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return enumlike.New(pairs...), diags
}

// Marshal serializes a table to YAML, keeping table order.
func Marshal[V any](t *enumlike.Table[string, V]) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for k, v := range t.All() {
		var value yaml.Node
		if err := value.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", k, err)
		}

		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to marshal table: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal table: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes a table to the given path.
func WriteFile[V any](t *enumlike.Table[string, V], path string) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write table file %s: %w", path, err)
	}

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
