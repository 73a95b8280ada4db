// Package docscript parses a small YAML document-description format into
// a doc.Doc tree. It exists only to give cmd/prettydoc something concrete
// to read, render, compare and hash from the command line; it is not
// part of the doc package's public surface.
package docscript

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"prettydoc.dev/prettydoc/doc"
)

// NodeKind identifies one of the script's node shapes.
type NodeKind string

const (
	KindText   NodeKind = "text"
	KindLine   NodeKind = "line"
	KindSpace  NodeKind = "space"
	KindNest   NodeKind = "nest"
	KindGroup  NodeKind = "group"
	KindConcat NodeKind = "concat"
	KindFill   NodeKind = "fill"
	KindStack  NodeKind = "stack"
	KindSpread NodeKind = "spread"
)

// ScriptErrorKind identifies why a script failed to parse.
type ScriptErrorKind string

const (
	// ErrKindMalformedYAML means the input wasn't valid YAML at all.
	ErrKindMalformedYAML ScriptErrorKind = "malformed_yaml"
	// ErrKindUnknownNode means a node named a kind this package doesn't understand.
	ErrKindUnknownNode ScriptErrorKind = "unknown_node"
	// ErrKindMissingField means a node was missing a field its kind requires.
	ErrKindMissingField ScriptErrorKind = "missing_field"
)

// ErrInvalidScript is returned when a doc script fails to parse into a
// doc.Doc. Use errors.As to recover the Kind for programmatic handling.
type ErrInvalidScript struct {
	Kind    ScriptErrorKind
	Message string
}

func (e *ErrInvalidScript) Error() string {
	if e == nil {
		return "invalid doc script"
	}
	if e.Message == "" {
		return fmt.Sprintf("invalid doc script (%s)", e.Kind)
	}
	return fmt.Sprintf("invalid doc script (%s): %s", e.Kind, e.Message)
}

// IsErrInvalidScript reports whether err wraps an ErrInvalidScript.
func IsErrInvalidScript(err error) bool {
	var target *ErrInvalidScript
	return errors.As(err, &target)
}

// node is the raw YAML shape a script node unmarshals into.
type node struct {
	Kind     NodeKind `yaml:"kind"`
	Text     string   `yaml:"text,omitempty"`
	Indent   int      `yaml:"indent,omitempty"`
	Sep      *node    `yaml:"sep,omitempty"`
	Child    *node    `yaml:"child,omitempty"`
	Children []node   `yaml:"children,omitempty"`
}

// Parse decodes a YAML doc script into a doc.Doc.
func Parse(src []byte) (doc.Doc, error) {
	var n node
	if err := yaml.Unmarshal(src, &n); err != nil {
		return doc.Empty(), &ErrInvalidScript{Kind: ErrKindMalformedYAML, Message: err.Error()}
	}
	return buildNode(n)
}

func buildNode(n node) (doc.Doc, error) {
	switch n.Kind {
	case KindText:
		return doc.Text(n.Text), nil
	case KindLine:
		return doc.Line(), nil
	case KindSpace:
		return doc.SpaceOrLine(), nil
	case KindNest:
		if n.Child == nil {
			return doc.Empty(), &ErrInvalidScript{Kind: ErrKindMissingField, Message: "nest node requires a child"}
		}
		child, err := buildNode(*n.Child)
		if err != nil {
			return doc.Empty(), err
		}
		return child.Nest(n.Indent), nil
	case KindGroup:
		if n.Child == nil {
			return doc.Empty(), &ErrInvalidScript{Kind: ErrKindMissingField, Message: "group node requires a child"}
		}
		child, err := buildNode(*n.Child)
		if err != nil {
			return doc.Empty(), err
		}
		return child.Grouped(), nil
	case KindConcat:
		children, err := buildChildren(n.Children)
		if err != nil {
			return doc.Empty(), err
		}
		return doc.FoldDocs(children, func(a, b doc.Doc) doc.Doc { return a.Concat(b) }), nil
	case KindStack:
		children, err := buildChildren(n.Children)
		if err != nil {
			return doc.Empty(), err
		}
		return doc.Stack(children), nil
	case KindSpread:
		children, err := buildChildren(n.Children)
		if err != nil {
			return doc.Empty(), err
		}
		return doc.Spread(children), nil
	case KindFill:
		if n.Sep == nil {
			return doc.Empty(), &ErrInvalidScript{Kind: ErrKindMissingField, Message: "fill node requires a sep"}
		}
		sep, err := buildNode(*n.Sep)
		if err != nil {
			return doc.Empty(), err
		}
		children, err := buildChildren(n.Children)
		if err != nil {
			return doc.Empty(), err
		}
		return doc.Fill(sep, children), nil
	default:
		return doc.Empty(), &ErrInvalidScript{Kind: ErrKindUnknownNode, Message: string(n.Kind)}
	}
}

func buildChildren(ns []node) ([]doc.Doc, error) {
	out := make([]doc.Doc, 0, len(ns))
	for _, n := range ns {
		d, err := buildNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
