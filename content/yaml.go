package content

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML reads a YAML mapping into a Map. Scalars keep their source text,
// nested mappings become dotted names (meta.description) and sequences are
// joined with newlines. An empty document yields an empty Map.
func FromYAML(r io.Reader) (Map, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Map{}, nil
		}
		return nil, fmt.Errorf("decoding YAML content: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Map{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("YAML content at line %d: expected a mapping", root.Line)
	}

	m := Map{}
	if err := flatten(m, "", root); err != nil {
		return nil, err
	}
	return m, nil
}

func flatten(m Map, prefix string, n *yaml.Node) error {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flatten(m, key, n.Content[i+1]); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind == yaml.AliasNode {
				c = c.Alias
			}
			if c.Kind != yaml.ScalarNode {
				return fmt.Errorf("YAML content at line %d: %s: sequences may only hold scalars", c.Line, prefix)
			}
			items = append(items, c.Value)
		}
		m[prefix] = strings.Join(items, "\n")
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			m[prefix] = ""
		} else {
			m[prefix] = n.Value
		}
	}
	return nil
}
