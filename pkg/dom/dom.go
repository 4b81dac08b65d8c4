// Package dom holds the small set of document operations the wrapper layer
// needs on top of golang.org/x/net/html: attribute access, attachment checks,
// selector queries and text extraction.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewDocument returns an empty document with <html>, <head> and <body>.
// The body is returned alongside the document root.
func NewDocument() (doc, body *html.Node) {
	doc = &html.Node{Type: html.DocumentNode}
	root := NewElement("html")
	head := NewElement("head")
	body = NewElement("body")
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)
	return doc, body
}

// Parse parses a full HTML document.
func Parse(src string) (*html.Node, error) {
	return html.Parse(strings.NewReader(src))
}

// NewElement creates a detached element node.
func NewElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// Attr returns the value of the named attribute.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, keeping its position if it already exists.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute if present.
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

// HasClass reports whether the class attribute contains name.
func HasClass(n *html.Node, name string) bool {
	classes, _ := Attr(n, "class")
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// IsAttached reports whether n is connected to a document node.
func IsAttached(n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == html.DocumentNode {
			return true
		}
	}
	return false
}

// Detach removes n from its parent, if any.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Find runs a CSS selector against the descendants of n.
func Find(n *html.Node, selector string) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Find(selector)
}

// FindByAttr returns the descendants of n matching selector whose attribute
// key equals val exactly. It avoids quoting val into a selector.
func FindByAttr(n *html.Node, selector, key, val string) *goquery.Selection {
	return Find(n, selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		got, ok := s.Attr(key)
		return ok && got == val
	})
}

// Text returns the text content of n with surrounding whitespace trimmed.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(goquery.NewDocumentFromNode(n).Text())
}

// Render serializes n to HTML.
func Render(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}
