package highlight

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is a mutable, in-memory parse of a partial HTML document. It is
// produced fresh for every render call and is never shared between calls;
// mutating it is safe as long as the caller owns it.
type Fragment struct {
	nodes []*html.Node
}

// ParseFragment parses raw as an HTML fragment, the way it would be parsed
// inside a <body> element. The parser is best-effort: malformed or partial
// markup is recovered rather than rejected, so template sub-blocks without a
// root element, or with unclosed tags, still produce a usable tree. An error
// is only returned when the input can't be tokenized at all.
func ParseFragment(raw string) (*Fragment, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(raw), body)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML fragment: %w", err)
	}
	return &Fragment{nodes: nodes}, nil
}

// String serializes the fragment's current structure and attributes back to
// HTML. Structural and attribute-value fidelity is guaranteed; byte-for-byte
// whitespace fidelity with the original input is not.
func (f *Fragment) String() string {
	var out strings.Builder
	for _, node := range f.nodes {
		// Render only fails on unrenderable node types or writer
		// errors, neither of which a parsed fragment written to a
		// strings.Builder can produce.
		_ = html.Render(&out, node)
	}
	return out.String()
}

// Elements returns a lazy iterator over every element in the fragment with
// the given tag name and the given attribute present, in document order.
// Attribute values are not inspected, only presence.
//
// Mutating the attributes of a yielded element during iteration is safe;
// restructuring the tree is not.
func (f *Fragment) Elements(tag, attr string) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for _, node := range f.nodes {
			if !walkElements(node, tag, attr, yield) {
				return
			}
		}
	}
}

func walkElements(node *html.Node, tag, attr string, yield func(*html.Node) bool) bool {
	if node.Type == html.ElementNode && node.Data == tag {
		if _, ok := attrValue(node, attr); ok {
			if !yield(node) {
				return false
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if !walkElements(child, tag, attr, yield) {
			return false
		}
	}
	return true
}

func attrValue(node *html.Node, key string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// addClass appends a class token to node's class attribute, creating the
// attribute if it's absent and space-separating from any existing classes. The
// token is appended even if it's already present; applying the same class
// twice yields it twice.
func addClass(node *html.Node, class string) {
	for i, attr := range node.Attr {
		if attr.Key != "class" {
			continue
		}
		if attr.Val == "" {
			node.Attr[i].Val = class
		} else {
			node.Attr[i].Val = attr.Val + " " + class
		}
		return
	}
	node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: class})
}
