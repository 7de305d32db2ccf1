// Package markup extracts the structure of an icon's SVG markup:
// its elements with their attributes, the title text and the path data.
package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Attr is a single attribute as written in the markup.
type Attr struct {
	Name  string
	Value string
}

// Element is one element of the document.
type Element struct {
	// Name is the local element name, e.g. "path".
	Name string
	// Selector is the child-combinator chain from the root, e.g. "svg > path".
	Selector string
	Attrs    []Attr
}

// Attr returns the value of the named attribute.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Document is the parsed structure of one icon file.
type Document struct {
	// Raw is the markup exactly as read.
	Raw string
	// Elements lists every element in document order.
	Elements []Element
	// Title is the raw text of the first svg > title element,
	// with character references left undecoded.
	Title string
	// PathData is the d attribute of the first svg > path element.
	PathData string
}

// Select returns the elements matching selector, in document order.
func (d *Document) Select(selector string) []Element {
	var out []Element
	for _, e := range d.Elements {
		if e.Selector == selector {
			out = append(out, e)
		}
	}
	return out
}

// Parse scans raw SVG markup. It fails only when the markup cannot be
// tokenized at all; structural problems are left to the lint rules.
func Parse(raw string) (*Document, error) {
	doc := &Document{Raw: raw}
	l := xml.NewLexer(parse.NewInputString(raw))

	var (
		stack     []string
		current   = -1
		titleSeen bool
		pathSeen  bool
		inTitle   bool
		title     strings.Builder
	)
	pop := func() {
		if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
		current = -1
	}

	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("markup: %w", err)
			}
			if inTitle {
				doc.Title = title.String()
			}
			return doc, nil
		case xml.StartTagToken:
			name := string(l.Text())
			stack = append(stack, name)
			doc.Elements = append(doc.Elements, Element{
				Name:     name,
				Selector: strings.Join(stack, " > "),
			})
			current = len(doc.Elements) - 1
			if doc.Elements[current].Selector == "svg > title" && !titleSeen {
				titleSeen, inTitle = true, true
			}
		case xml.AttributeToken:
			if current < 0 {
				continue
			}
			a := Attr{Name: string(l.Text()), Value: unquote(l.AttrVal())}
			e := &doc.Elements[current]
			e.Attrs = append(e.Attrs, a)
			if e.Selector == "svg > path" && a.Name == "d" && !pathSeen {
				doc.PathData, pathSeen = a.Value, true
			}
		case xml.StartTagCloseToken:
			current = -1
		case xml.StartTagCloseVoidToken:
			if inTitle && len(stack) == 2 {
				inTitle = false
			}
			pop()
		case xml.EndTagToken:
			if inTitle && len(stack) == 2 {
				doc.Title = title.String()
				inTitle = false
			}
			pop()
		case xml.TextToken:
			if inTitle && len(stack) == 2 {
				title.Write(data)
			}
		}
	}
}

func unquote(b []byte) string {
	if len(b) >= 2 && (b[0] == '"' || b[0] == '\'') && b[len(b)-1] == b[0] {
		b = b[1 : len(b)-1]
	}
	return string(b)
}
