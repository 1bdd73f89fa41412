package tree

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML builds a Value from a YAML document. Mapping order is preserved
// via the yaml.Node API. Nesting is capped by MaxDepth like the JSON path.
func ParseYAML(data []byte, opts ...ParseOpt) (Value, error) {
	opt := normalizeOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Value{}, ErrMaxBytes
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, fmt.Errorf("tree: malformed YAML: %w", err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Null(), nil
		}
		node = node.Content[0]
	}
	return fromYAMLNode(node, opt.MaxDepth)
}

func fromYAMLNode(n *yaml.Node, depthLeft int) (Value, error) {
	if depthLeft == 0 {
		return Value{}, ErrMaxDepth
	}
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias, depthLeft)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAMLNode(c, depthLeft-1)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return Value{kind: KindArray, arr: elems}, nil
	case yaml.MappingNode:
		fields := make([]Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind == yaml.AliasNode {
				key = key.Alias
			}
			v, err := fromYAMLNode(n.Content[i+1], depthLeft-1)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, Field{Name: key.Value, Value: v})
		}
		return Value{kind: KindObject, fields: fields}, nil
	default:
		return Null(), nil
	}
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!null", "":
		if n.Tag == "" && n.Value != "" {
			return StringValue(n.Value), nil
		}
		return Null(), nil
	case "!!bool":
		switch strings.ToLower(n.Value) {
		case "true", "yes", "on":
			return BoolValue(true), nil
		case "false", "no", "off":
			return BoolValue(false), nil
		default:
			return Value{}, fmt.Errorf("tree: bad YAML bool %q", n.Value)
		}
	case "!!int", "!!float":
		return NumberValue(n.Value), nil
	case "!!str":
		return StringValue(n.Value), nil
	default:
		// Unknown scalar tags decay to their string form.
		return StringValue(n.Value), nil
	}
}
