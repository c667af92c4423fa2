package record

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotMapping is returned when a document that must hold a mapping
	// holds something else.
	ErrNotMapping = errors.New("expected a mapping")
)

// DecodeRecord parses one record from YAML or JSON, keeping field order.
func DecodeRecord(data []byte) (*Record, error) {
	var r Record

	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	return &r, nil
}

// DecodeItems parses a row set from YAML or JSON. The document is either a
// mapping of key to record or a sequence of records keyed 0..n-1.
func DecodeItems(data []byte) (*Items, error) {
	var it Items

	if err := yaml.Unmarshal(data, &it); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	return &it, nil
}

// UnmarshalYAML implements yaml.Unmarshaler keeping field order. Nested
// mappings become *Record, sequences become []any.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w, got %s", node.Line, ErrNotMapping, kindName(node.Kind))
	}

	*r = Record{values: make(map[string]any, len(node.Content)/2)}

	for i := 0; i+1 < len(node.Content); i += 2 {
		v, err := decodeNode(node.Content[i+1])
		if err != nil {
			return err
		}

		r.Set(resolve(node.Content[i]).Value, v)
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler keeping field order.
func (r *Record) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for name, v := range r.All() {
		val := new(yaml.Node)
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}

		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			val,
		)
	}

	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Mapping keys are normalized.
func (it *Items) UnmarshalYAML(node *yaml.Node) error {
	node = resolve(node)
	*it = Items{rows: make(map[Key]*Record)}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			var row Record
			if err := row.UnmarshalYAML(node.Content[i+1]); err != nil {
				return fmt.Errorf("row %q: %w", node.Content[i].Value, err)
			}

			it.Set(resolve(node.Content[i]).Value, &row)
		}
	case yaml.SequenceNode:
		for i, elem := range node.Content {
			var row Record
			if err := row.UnmarshalYAML(elem); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}

			it.Set(i, &row)
		}
	default:
		return fmt.Errorf("line %d: expected a mapping or sequence of records, got %s", node.Line, kindName(node.Kind))
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler keeping key order.
func (it *Items) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for k, row := range it.All() {
		key := new(yaml.Node)
		if err := key.Encode(k); err != nil {
			return nil, fmt.Errorf("key %v: %w", k, err)
		}

		val := new(yaml.Node)
		if err := val.Encode(row); err != nil {
			return nil, fmt.Errorf("row %v: %w", k, err)
		}

		out.Content = append(out.Content, key, val)
	}

	return out, nil
}

func decodeNode(node *yaml.Node) (any, error) {
	node = resolve(node)

	switch node.Kind {
	case yaml.MappingNode:
		var r Record
		if err := r.UnmarshalYAML(node); err != nil {
			return nil, err
		}

		return &r, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))

		for _, elem := range node.Content {
			v, err := decodeNode(elem)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return v, nil
	}
}

// resolve unwraps documents and aliases.
func resolve(node *yaml.Node) *yaml.Node {
	for {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}
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
		return "empty document"
	}
}
