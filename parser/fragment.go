package parser

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLNodes converts n into golang.org/x/net/html nodes, one per top-level
// item with adjacent text merged. Character references become decoded text, template tags become text
// from their String method, and a textarea's value attribute becomes its
// content again.
func HTMLNodes(n Node) []*html.Node {
	switch v := n.(type) {
	case nil:
		return nil
	case Sequence:
		var out []*html.Node
		for _, c := range v {
			for _, hn := range HTMLNodes(c) {
				if last := len(out) - 1; last >= 0 && hn.Type == html.TextNode && out[last].Type == html.TextNode {
					out[last].Data += hn.Data
					continue
				}
				out = append(out, hn)
			}
		}
		return out
	case Text:
		return []*html.Node{{Type: html.TextNode, Data: string(v)}}
	case *CharRef:
		return []*html.Node{{Type: html.TextNode, Data: v.Str}}
	case *TemplateTag:
		return []*html.Node{{Type: html.TextNode, Data: v.String()}}
	case *Comment:
		return []*html.Node{{Type: html.CommentNode, Data: v.Value}}
	case *Element:
		return []*html.Node{elementToHTML(v)}
	}
	return nil
}

func elementToHTML(el *Element) *html.Node {
	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     el.Name,
		DataAtom: atom.Lookup([]byte(el.Name)),
	}

	children := el.Children
	for _, attr := range el.StaticAttributes() {
		if el.Name == "textarea" && attr.Name == "value" {
			children = []Node{attr.Value}
			continue
		}
		hn.Attr = append(hn.Attr, html.Attribute{Key: attr.Name, Val: TextContent(attr.Value)})
	}

	for _, c := range children {
		for _, child := range HTMLNodes(c) {
			// adjacent text merges into one node
			if child.Type == html.TextNode && hn.LastChild != nil && hn.LastChild.Type == html.TextNode {
				hn.LastChild.Data += child.Data
				continue
			}
			hn.AppendChild(child)
		}
	}
	return hn
}

// Render writes n as HTML to w.
func Render(w io.Writer, n Node) error {
	for _, hn := range HTMLNodes(n) {
		if err := html.Render(w, hn); err != nil {
			return errors.Wrap(err, "rendering fragment")
		}
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(n Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
