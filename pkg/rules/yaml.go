package rules

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping node keeping the document key order.
// Values may be a string, null (empty pattern) or a sequence of values.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Tag == "!!null" {
		*t = *NewTable()
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Join(ErrInvalidTable, fmt.Errorf("line %d: expected mapping, got %s", node.Line, kindName(node.Kind)))
	}

	out := NewTable()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return errors.Join(ErrInvalidTable, fmt.Errorf("line %d: rule name must be a scalar", key.Line))
		}
		var p Pattern
		if err := p.UnmarshalYAML(val); err != nil {
			return errors.Join(fmt.Errorf("rule %q", key.Value), err)
		}
		out.Set(key.Value, p)
	}
	*t = *out
	return nil
}

// MarshalYAML encodes the table as an ordered mapping.
func (t *Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for name, p := range t.All() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			p.node(),
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a scalar or a (possibly nested) sequence.
func (p *Pattern) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*p = Expr("")
			return nil
		}
		*p = Expr(node.Value)
		return nil
	case yaml.SequenceNode:
		items := make([]Pattern, 0, len(node.Content))
		for _, n := range node.Content {
			var it Pattern
			if err := it.UnmarshalYAML(n); err != nil {
				return err
			}
			items = append(items, it)
		}
		*p = ListOf(items...)
		return nil
	default:
		return errors.Join(ErrInvalidPattern, fmt.Errorf("line %d: expected string or list, got %s", node.Line, kindName(node.Kind)))
	}
}

// MarshalYAML encodes scalars as strings and lists as sequences.
func (p Pattern) MarshalYAML() (any, error) {
	return p.node(), nil
}

func (p Pattern) node() *yaml.Node {
	if !p.list {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.expr}
	}
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, it := range p.items {
		n.Content = append(n.Content, it.node())
	}
	return n
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
