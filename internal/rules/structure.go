package rules

import (
	"regexp"
	"strings"

	"github.com/gogpu/iconlint"
	"github.com/gogpu/iconlint/internal/catalog"
)

var (
	titlePattern      = regexp.MustCompile(`^(.+) icon$`)
	pathDataPattern   = regexp.MustCompile(`^[,a-zA-Z0-9. -]+$`)
	extraneousPattern = regexp.MustCompile(`^<svg( [^\s]*=".*"){3}><title>.*</title><path d=".*"/></svg>\r?\n?$`)
)

// required lists the elements an icon consists of, each exactly once.
var required = []string{"svg", "svg > title", "svg > path"}

func checkElements(in *Input, _ *env) []Diagnostic {
	var out []Diagnostic
	counts := make(map[string]int)
	for _, el := range in.Doc.Elements {
		counts[el.Selector]++
	}
	for _, sel := range required {
		if n := len(in.Doc.Select(sel)); n != 1 {
			out = append(out, violation(Elements, "Expected exactly one <%s> element; found %d", sel, n))
		}
		delete(counts, sel)
	}
	seen := make(map[string]bool)
	for _, el := range in.Doc.Elements {
		if _, extra := counts[el.Selector]; extra && !seen[el.Selector] {
			seen[el.Selector] = true
			out = append(out, violation(Elements, "Element <%s> is not allowed", el.Selector))
		}
	}
	return out
}

// allowedAttr validates one attribute value for an element selector.
type allowedAttr func(value string, s Settings) bool

func equals(want string) allowedAttr {
	return func(v string, _ Settings) bool { return v == want }
}

func attrWhitelist() map[string]map[string]allowedAttr {
	return map[string]map[string]allowedAttr{
		"svg": {
			"role":  equals("img"),
			"xmlns": equals("http://www.w3.org/2000/svg"),
			"viewBox": func(v string, s Settings) bool {
				size := iconlint.FormatNumber(s.CanvasSize)
				return v == "0 0 "+size+" "+size
			},
		},
		"svg > title": {},
		"svg > path": {
			"d": func(v string, _ Settings) bool { return pathDataPattern.MatchString(v) },
		},
	}
}

// requiredAttrs lists the attributes each element must carry.
var requiredAttrs = map[string][]string{
	"svg":        {"role", "viewBox", "xmlns"},
	"svg > path": {"d"},
}

func checkAttributes(in *Input, e *env) []Diagnostic {
	var out []Diagnostic
	whitelist := attrWhitelist()
	for _, el := range in.Doc.Elements {
		allowed, ok := whitelist[el.Selector]
		if !ok {
			// Unknown elements are reported by the elements rule.
			continue
		}
		for _, a := range el.Attrs {
			valid, known := allowed[a.Name]
			switch {
			case !known:
				out = append(out, violation(Attributes, "Attribute %q is not allowed on <%s>", a.Name, el.Selector))
			case !valid(a.Value, e.settings):
				out = append(out, violation(Attributes, "Attribute %q on <%s> has an invalid value %q", a.Name, el.Selector, a.Value))
			}
		}
		for _, name := range requiredAttrs[el.Selector] {
			if _, ok := el.Attr(name); !ok {
				out = append(out, violation(Attributes, "Attribute %q is missing on <%s>", name, el.Selector))
			}
		}
	}
	return out
}

func checkTitle(in *Input, e *env) []Diagnostic {
	m := titlePattern.FindStringSubmatch(in.Doc.Title)
	if m == nil {
		return []Diagnostic{violation(Title, `<title> should follow the format "[ICON_NAME] icon"`)}
	}
	if e.catalog == nil {
		return nil
	}
	name := catalog.HTMLFriendlyToTitle(m[1])
	if !e.catalog.HasTitle(name) {
		return []Diagnostic{violation(Title, "No icon with title %q found in the catalog", name)}
	}
	return nil
}

func checkExtraneous(in *Input, _ *env) []Diagnostic {
	if !extraneousPattern.MatchString(in.Doc.Raw) {
		return []Diagnostic{violation(Extraneous,
			"Unexpected character(s), most likely extraneous whitespace, detected in SVG markup")}
	}
	return nil
}

// iconName derives the ledger key for an icon from its raw title.
func iconName(rawTitle string) string {
	return catalog.HTMLFriendlyToTitle(strings.TrimSuffix(rawTitle, " icon"))
}
