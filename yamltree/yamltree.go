// Package yamltree converts YAML documents into [jsontree.Value] trees.
//
// It parses input with [github.com/goccy/go-yaml/parser] and walks the
// resulting AST, mapping YAML nodes onto the jsontree kinds. Mapping entry
// order is preserved, anchors are resolved, and tag wrappers are unwrapped.
// Only the first document of a multi-document stream is converted.
package yamltree

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"go.jacobcolvin.com/jsontree"
)

// Sentinel errors returned by the converter.
var (
	ErrInvalidYAML     = errors.New("invalid yaml")
	ErrUnsupportedNode = errors.New("unsupported yaml node")
)

// FromYAML parses data as YAML and converts the first document into a
// value tree. Empty input converts to null.
func FromYAML(data []byte) (*jsontree.Value, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return jsontree.Null(), nil
	}

	body := file.Docs[0].Body
	c := &converter{anchors: buildAnchorMap(body)}

	return c.convert(body)
}

// converter carries the anchor table used to resolve alias nodes.
type converter struct {
	anchors map[string]ast.Node
}

func (c *converter) convert(node ast.Node) (*jsontree.Value, error) {
	node = c.resolveAlias(node)
	node = unwrapNode(node)

	if node == nil {
		return jsontree.Null(), nil
	}

	switch n := node.(type) {
	case *ast.NullNode:
		return jsontree.Null(), nil

	case *ast.BoolNode:
		return jsontree.Bool(n.Value), nil

	case *ast.IntegerNode:
		f, err := integerFloat(n.Value)
		if err != nil {
			return nil, err
		}

		return jsontree.Number(f), nil

	case *ast.FloatNode:
		return jsontree.Number(n.Value), nil

	case *ast.InfinityNode:
		return jsontree.Number(n.Value), nil

	case *ast.NanNode:
		return jsontree.Number(math.NaN()), nil

	case *ast.StringNode:
		return jsontree.String(n.Value), nil

	case *ast.LiteralNode:
		return jsontree.String(n.Value.Value), nil

	case *ast.SequenceNode:
		arr := jsontree.Array()

		for _, elem := range n.Values {
			child, err := c.convert(elem)
			if err != nil {
				return nil, err
			}

			arr.Append(child)
		}

		return arr, nil

	case *ast.MappingNode:
		return c.convertMapping(n.Values)

	case *ast.MappingValueNode:
		return c.convertMapping([]*ast.MappingValueNode{n})
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedNode, node)
}

func (c *converter) convertMapping(entries []*ast.MappingValueNode) (*jsontree.Value, error) {
	obj := jsontree.Object()

	for _, entry := range entries {
		child, err := c.convert(entry.Value)
		if err != nil {
			return nil, err
		}

		obj.Add(keyString(entry.Key), child)
	}

	return obj, nil
}

// resolveAlias replaces alias nodes with their anchor's value. Unresolvable
// aliases become null.
func (c *converter) resolveAlias(node ast.Node) ast.Node {
	alias, ok := node.(*ast.AliasNode)
	if !ok {
		return node
	}

	if resolved, found := c.anchors[alias.Value.String()]; found {
		return resolved
	}

	return nil
}

// unwrapNode resolves TagNode and AnchorNode wrappers to the underlying
// value node.
func unwrapNode(node ast.Node) ast.Node {
	for {
		switch n := node.(type) {
		case *ast.TagNode:
			node = n.Value
		case *ast.AnchorNode:
			node = n.Value
		default:
			return node
		}
	}
}

// buildAnchorMap walks the AST and collects all anchor definitions.
func buildAnchorMap(node ast.Node) map[string]ast.Node {
	anchors := make(map[string]ast.Node)

	ast.Walk(&anchorVisitor{anchors: anchors}, node)

	return anchors
}

type anchorVisitor struct {
	anchors map[string]ast.Node
}

// Visit implements the [ast.Visitor] interface.
func (v *anchorVisitor) Visit(node ast.Node) ast.Visitor {
	if anchor, ok := node.(*ast.AnchorNode); ok {
		v.anchors[anchor.Name.String()] = anchor.Value
	}

	return v
}

// keyString extracts the mapping key text. Non-string scalar keys fall back
// to their source representation.
func keyString(key ast.MapKeyNode) string {
	if s, ok := unwrapNode(key).(*ast.StringNode); ok {
		return s.Value
	}

	return key.String()
}

// integerFloat widens the parser's integer representation to float64.
func integerFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}

	return 0, fmt.Errorf("%w: integer payload %T", ErrUnsupportedNode, v)
}
