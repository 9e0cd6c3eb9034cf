package document

import (
	"strings"

	"golang.org/x/net/html"
)

// Document is a read-only, queryable view over parsed markup. It is
// shared by every check module and never mutated after Parse.
type Document struct {
	root *html.Node
}

// Element wraps a single element node.
type Element struct {
	node *html.Node
}

// Parse builds a Document from raw markup. Parsing is tolerant: real
// world HTML is uncontrolled input, so a malformed page still yields a
// usable tree and an irrecoverable failure yields an empty one rather
// than an error.
func Parse(raw string) *Document {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		root = &html.Node{Type: html.DocumentNode}
	}
	return &Document{root: root}
}

// First returns the first element with the given tag name whose
// attributes match attrs, or nil if none exists.
func (d *Document) First(tag string, attrs map[string]string) *Element {
	found := d.find(tag, attrs, true)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// All returns every element with the given tag name whose attributes
// match attrs. A nil attrs matches any element with that tag.
func (d *Document) All(tag string, attrs map[string]string) []*Element {
	return d.find(tag, attrs, false)
}

func (d *Document) find(tag string, attrs map[string]string, firstOnly bool) []*Element {
	var found []*Element
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if firstOnly && len(found) > 0 {
			return
		}
		if n.Type == html.ElementNode && n.Data == tag && matchAttrs(n, attrs) {
			found = append(found, &Element{node: n})
			if firstOnly {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(d.root)
	return found
}

// matchAttrs checks each required attribute against the node. The rel
// attribute holds a whitespace-separated token list, so it is matched
// token-wise; every other attribute is an exact value match.
func matchAttrs(n *html.Node, attrs map[string]string) bool {
	for key, want := range attrs {
		val, ok := attrValue(n, key)
		if !ok {
			return false
		}
		if key == "rel" {
			if !containsToken(val, want) {
				return false
			}
			continue
		}
		if val != want {
			return false
		}
	}
	return true
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func containsToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *Element) Attr(key string) string {
	val, _ := attrValue(e.node, key)
	return val
}

// HasAttr reports whether the named attribute is present at all,
// regardless of its value.
func (e *Element) HasAttr(key string) bool {
	_, ok := attrValue(e.node, key)
	return ok
}

// Text returns the concatenated text content of the element's subtree.
func (e *Element) Text() string {
	var sb strings.Builder
	collectText(e.node, nil, &sb)
	return sb.String()
}

// Text extracts the document's visible text, space-separated. Tags
// named in exclude (e.g. script, style, nav) are removed together with
// their whole subtrees before extraction.
func (d *Document) Text(exclude ...string) string {
	skip := make(map[string]bool, len(exclude))
	for _, tag := range exclude {
		skip[tag] = true
	}
	var sb strings.Builder
	collectText(d.root, skip, &sb)
	return sb.String()
}

func collectText(n *html.Node, skip map[string]bool, sb *strings.Builder) {
	if n.Type == html.ElementNode && skip[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(text)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, skip, sb)
	}
}
