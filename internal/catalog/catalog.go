// Package catalog reads the icon metadata file that maps display titles
// to icons, and converts titles between their catalog, markup and slug
// forms.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// License describes a non-default icon license.
type License struct {
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

// Icon is one catalog entry.
type Icon struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug,omitempty"`
	Hex        string   `json:"hex"`
	Source     string   `json:"source"`
	Guidelines string   `json:"guidelines,omitempty"`
	License    *License `json:"license,omitempty"`
}

// FileSlug returns the explicit slug of the icon, or one derived from
// its title.
func (i Icon) FileSlug() string {
	if i.Slug != "" {
		return i.Slug
	}
	return TitleToSlug(i.Title)
}

// Catalog is an immutable, title-indexed set of icons.
// It is safe for concurrent use.
type Catalog struct {
	icons   []Icon
	byTitle map[string]int
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog data of the form {"icons": [...]}.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Icons []Icon `json:"icons"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return New(doc.Icons...), nil
}

// New builds a catalog from icons. Later duplicates of a title are ignored.
func New(icons ...Icon) *Catalog {
	c := &Catalog{
		icons:   append([]Icon(nil), icons...),
		byTitle: make(map[string]int, len(icons)),
	}
	for i, icon := range c.icons {
		if _, ok := c.byTitle[icon.Title]; !ok {
			c.byTitle[icon.Title] = i
		}
	}
	return c
}

// HasTitle reports whether an icon with exactly this title exists.
func (c *Catalog) HasTitle(title string) bool {
	_, ok := c.byTitle[title]
	return ok
}

// Lookup returns the icon with the given title.
func (c *Catalog) Lookup(title string) (Icon, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return Icon{}, false
	}
	return c.icons[i], true
}

// Len returns the number of icons.
func (c *Catalog) Len() int {
	return len(c.icons)
}

var slugReplacer = strings.NewReplacer(
	"+", "plus",
	".", "dot",
	"&", "and",
	"đ", "d",
	"ħ", "h",
	"ı", "i",
	"ĸ", "k",
	"ŀ", "l",
	"ł", "l",
	"ß", "ss",
	"ŧ", "t",
)

// TitleToSlug converts a brand title into its file slug: lowercase ASCII
// letters and digits only, with a few symbols spelled out and diacritics
// stripped.
func TitleToSlug(title string) string {
	s := norm.NFD.String(slugReplacer.Replace(strings.ToLower(title)))
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TitleToHTMLFriendly escapes a title for use inside SVG markup.
// Non-ASCII characters become numeric character references.
func TitleToHTMLFriendly(title string) string {
	var sb strings.Builder
	for _, r := range title {
		switch {
		case r == '&':
			sb.WriteString("&amp;")
		case r == '"':
			sb.WriteString("&quot;")
		case r == '<':
			sb.WriteString("&lt;")
		case r == '>':
			sb.WriteString("&gt;")
		case r > 127:
			sb.WriteString("&#" + strconv.Itoa(int(r)) + ";")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// HTMLFriendlyToTitle decodes the character references in a title taken
// from SVG markup.
func HTMLFriendlyToTitle(s string) string {
	return html.UnescapeString(s)
}
