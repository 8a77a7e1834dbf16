// Package treeio converts between nested associative data (YAML
// documents, generic string maps) and tree.Tree[string] values. It is
// the boundary the CLI uses to get trees in and out of files; the
// tree and zipper packages never depend on it.
package treeio

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"treezip/pkg/tree"
)

var (
	// ErrOneNodeRoot is returned when the top level of the input does
	// not have exactly one key: a tree has exactly one root value.
	ErrOneNodeRoot = errors.New("input must have exactly one root key")

	// ErrBadChildren is returned when a node's value is something
	// that cannot describe a child list (neither null, a mapping, a
	// sequence, nor a scalar).
	ErrBadChildren = errors.New("malformed children")
)

// FromMap builds a tree from a single-key nested map. Map values may
// be nil (leaf), nested map[string]any (children keyed by value), a
// []any of strings or single-key maps, or a scalar (one leaf child
// holding its string form).
//
// Go maps carry no ordering, so children built from a map level are
// sorted by value for determinism. Use Load / FromYAMLNode when the
// document order of a YAML file must be preserved.
func FromMap(m map[string]any) (tree.Tree[string], error) {
	if len(m) != 1 {
		return tree.Tree[string]{}, fmt.Errorf("%d root keys: %w", len(m), ErrOneNodeRoot)
	}
	for key, val := range m {
		return subtreeFromValue(key, val)
	}
	panic("unreachable")
}

func subtreeFromValue(key string, val any) (tree.Tree[string], error) {
	switch v := val.(type) {
	case nil:
		return tree.New(key), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kids := make([]tree.Tree[string], 0, len(v))
		for _, k := range keys {
			child, err := subtreeFromValue(k, v[k])
			if err != nil {
				return tree.Tree[string]{}, err
			}
			kids = append(kids, child)
		}
		return tree.New(key, kids...), nil
	case []any:
		kids := make([]tree.Tree[string], 0, len(v))
		for _, item := range v {
			switch it := item.(type) {
			case map[string]any:
				// A list item subtree is itself single-rooted.
				child, err := FromMap(it)
				if err != nil {
					return tree.Tree[string]{}, err
				}
				kids = append(kids, child)
			case string, int, int64, float64, bool:
				kids = append(kids, tree.New(fmt.Sprintf("%v", it)))
			default:
				return tree.Tree[string]{}, fmt.Errorf("list item under %q is %T: %w", key, item, ErrBadChildren)
			}
		}
		return tree.New(key, kids...), nil
	case string, int, int64, float64, bool:
		return tree.New(key, tree.New(fmt.Sprintf("%v", v))), nil
	default:
		return tree.Tree[string]{}, fmt.Errorf("value under %q is %T: %w", key, val, ErrBadChildren)
	}
}

// ToMap is the inverse of FromMap: a single-key nested map with nil
// leaves. Map levels lose child order and collapse duplicate-valued
// siblings (last one wins), which mirrors what FromMap can
// reconstruct. Use Marshal when the output must round-trip.
func ToMap(t tree.Tree[string]) map[string]any {
	if t.IsLeaf() {
		return map[string]any{t.Value: nil}
	}
	kids := make(map[string]any, len(t.Children))
	for _, c := range t.Children {
		for k, v := range ToMap(c) {
			kids[k] = v
		}
	}
	return map[string]any{t.Value: kids}
}

// Marshal renders a tree as a YAML document, the inverse of Parse:
// children keep their order and duplicate-valued siblings all
// survive, unlike the map-level lossiness of ToMap. It is the only
// sanctioned serializer for write-back paths.
func Marshal(t tree.Tree[string]) ([]byte, error) {
	return yaml.Marshal(ToYAMLNode(t))
}

// ToYAMLNode converts a tree into a single-key YAML mapping node, the
// inverse of FromYAMLNode.
func ToYAMLNode(t tree.Tree[string]) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{scalarNode(t.Value), childrenNode(t)},
	}
}

func childrenNode(t tree.Tree[string]) *yaml.Node {
	if t.IsLeaf() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, c := range t.Children {
		node.Content = append(node.Content, scalarNode(c.Value), childrenNode(c))
	}
	return node
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// Load reads a YAML file and converts its single-root document into a
// tree, preserving the document's child order.
func Load(path string) (tree.Tree[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tree.Tree[string]{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse converts a YAML document into a tree, preserving child order.
func Parse(data []byte) (tree.Tree[string], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return tree.Tree[string]{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return tree.Tree[string]{}, fmt.Errorf("empty document: %w", ErrOneNodeRoot)
	}
	return FromYAMLNode(doc.Content[0])
}

// FromYAMLNode converts a YAML mapping node with exactly one key into
// a tree. Unlike FromMap it walks the YAML AST directly, so children
// keep the order they have in the document.
func FromYAMLNode(node *yaml.Node) (tree.Tree[string], error) {
	if node.Kind != yaml.MappingNode {
		return tree.Tree[string]{}, fmt.Errorf("root is %s, want mapping: %w", yamlKind(node.Kind), ErrOneNodeRoot)
	}
	// Mapping content is flat [key, value, key, value, ...].
	if len(node.Content) != 2 {
		return tree.Tree[string]{}, fmt.Errorf("%d root keys: %w", len(node.Content)/2, ErrOneNodeRoot)
	}
	return subtreeFromYAML(node.Content[0], node.Content[1])
}

func subtreeFromYAML(key, val *yaml.Node) (tree.Tree[string], error) {
	switch val.Kind {
	case yaml.ScalarNode:
		if val.Tag == "!!null" {
			return tree.New(key.Value), nil
		}
		return tree.New(key.Value, tree.New(val.Value)), nil
	case yaml.MappingNode:
		kids := make([]tree.Tree[string], 0, len(val.Content)/2)
		for i := 0; i+1 < len(val.Content); i += 2 {
			child, err := subtreeFromYAML(val.Content[i], val.Content[i+1])
			if err != nil {
				return tree.Tree[string]{}, err
			}
			kids = append(kids, child)
		}
		return tree.New(key.Value, kids...), nil
	case yaml.SequenceNode:
		kids := make([]tree.Tree[string], 0, len(val.Content))
		for _, item := range val.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				kids = append(kids, tree.New(item.Value))
			case yaml.MappingNode:
				child, err := FromYAMLNode(item)
				if err != nil {
					return tree.Tree[string]{}, err
				}
				kids = append(kids, child)
			default:
				return tree.Tree[string]{}, fmt.Errorf("list item under %q is %s: %w", key.Value, yamlKind(item.Kind), ErrBadChildren)
			}
		}
		return tree.New(key.Value, kids...), nil
	case yaml.AliasNode:
		return subtreeFromYAML(key, val.Alias)
	default:
		return tree.Tree[string]{}, fmt.Errorf("value under %q is %s: %w", key.Value, yamlKind(val.Kind), ErrBadChildren)
	}
}

func yamlKind(k yaml.Kind) string {
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
