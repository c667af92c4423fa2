package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"schematic/association"
)

// --- Params YAML methods ---

// UnmarshalYAML accepts either a single string or a sequence of strings.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		*p = Params{str}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*p = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or sequence, got %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML outputs a single string if there is one parameter, otherwise
// a flow sequence.
func (p Params) MarshalYAML() (any, error) {
	return p.node(), nil
}

func (p Params) node() *yaml.Node {
	if p.IsSingle() {
		return scalar(p.First())
	}

	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, s := range p {
		seq.Content = append(seq.Content, scalar(s))
	}

	return seq
}

// --- FieldTable YAML methods ---

// UnmarshalYAML reads a mapping of field name to kind, keeping order. An
// empty kind reads as KindAny.
func (t *FieldTable) UnmarshalYAML(node *yaml.Node) error {
	pairs, err := mappingPairs(node, "fields")
	if err != nil {
		return err
	}

	out := make(FieldTable, 0, len(pairs))

	for _, pair := range pairs {
		var kind string
		if err := pair[1].Decode(&kind); err != nil {
			return fmt.Errorf("field %q: %w", pair[0].Value, err)
		}

		out = append(out, Field{Name: pair[0].Value, Kind: FieldKind(kind)})
	}

	*t = out

	return nil
}

// MarshalYAML writes the fields as an ordered mapping.
func (t FieldTable) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range t {
		m.Content = append(m.Content, scalar(f.Name), scalar(string(f.Kind)))
	}

	return m, nil
}

// --- AssociationTable YAML methods ---

// UnmarshalYAML reads a mapping of token to Params, keeping order.
func (t *AssociationTable) UnmarshalYAML(node *yaml.Node) error {
	pairs, err := mappingPairs(node, "associations")
	if err != nil {
		return err
	}

	out := make(AssociationTable, 0, len(pairs))

	for _, pair := range pairs {
		var params Params
		if err := pair[1].Decode(&params); err != nil {
			return fmt.Errorf("association %q: %w", pair[0].Value, err)
		}

		out = append(out, association.Declaration{Token: pair[0].Value, Params: params})
	}

	*t = out

	return nil
}

// MarshalYAML writes the declarations as an ordered mapping.
func (t AssociationTable) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}

	for _, decl := range t {
		m.Content = append(m.Content, scalar(decl.Token), Params(decl.Params).node())
	}

	return m, nil
}

// --- EmptyMode YAML methods ---

// UnmarshalYAML rejects unknown modes early so that the error carries the
// line number.
func (m *EmptyMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	mode := EmptyMode(s)
	if mode != "" && !mode.IsValid() {
		return fmt.Errorf("line %d: unknown empty mode %q (want %s or %s)", node.Line, s, EmptyStandard, EmptyNever)
	}

	*m = mode

	return nil
}

// mappingPairs returns the key and value nodes of a mapping. Keys must be
// unique strings.
func mappingPairs(node *yaml.Node, what string) ([][2]*yaml.Node, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s must be a mapping, got %s", node.Line, what, kindName(node.Kind))
	}

	seen := make(map[string]struct{}, len(node.Content)/2)
	pairs := make([][2]*yaml.Node, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: %s keys must be strings", key.Line, what)
		}

		if _, dup := seen[key.Value]; dup {
			return nil, fmt.Errorf("line %d: %s key %q repeated", key.Line, what, key.Value)
		}

		seen[key.Value] = struct{}{}
		pairs = append(pairs, [2]*yaml.Node{key, value})
	}

	return pairs, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
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
