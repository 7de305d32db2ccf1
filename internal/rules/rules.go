// Package rules holds the named checks an icon must pass and the
// evaluator that runs them against one icon.
package rules

import (
	"fmt"

	"github.com/gogpu/iconlint"
	"github.com/gogpu/iconlint/internal/markup"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// KindViolation is an ordinary rule failure.
	KindViolation Kind = iota
	// KindDegenerate reports a path whose bounds collapse to a point.
	KindDegenerate
	// KindMalformedPath reports path data that could not be tokenized.
	KindMalformedPath
)

func (k Kind) String() string {
	switch k {
	case KindViolation:
		return "violation"
	case KindDegenerate:
		return "degenerate"
	case KindMalformedPath:
		return "malformed-path"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PathSyntax names the diagnostic reported for malformed path data.
const PathSyntax = "path-syntax"

// Diagnostic is one human-readable finding about an icon.
type Diagnostic struct {
	Rule    string
	Kind    Kind
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Rule, d.Message)
}

// Catalog answers whether a display title belongs to a known icon.
type Catalog interface {
	HasTitle(title string) bool
}

// Settings are the numeric limits the rules check against.
type Settings struct {
	CanvasSize        float64
	FloatPrecision    int
	MaxFloatPrecision int
	Tolerance         float64
}

// DefaultSettings returns the limits of the shared icon library.
func DefaultSettings() Settings {
	return Settings{
		CanvasSize:        24,
		FloatPrecision:    3,
		MaxFloatPrecision: 5,
		Tolerance:         0.001,
	}
}

// Geometry is the analysis of one path data string. It depends on the
// path data alone, so icons with identical data can share it.
type Geometry struct {
	// Path is nil when PathErr is set.
	Path     *iconlint.Path
	PathErr  error
	Resolved []iconlint.ResolvedInstruction
	Box      iconlint.Rect
}

// Analyze tokenizes d, resolves it and computes its bounds.
func Analyze(d string) Geometry {
	p, err := iconlint.ParsePath(d)
	if err != nil {
		return Geometry{PathErr: err}
	}
	rs := iconlint.Resolve(p)
	return Geometry{Path: p, Resolved: rs, Box: iconlint.BoundsResolved(rs)}
}

// Input is everything the rules may look at for one icon. Rules treat it
// as read-only.
type Input struct {
	Doc *markup.Document
	Geometry
}

// NewInput analyzes the path data of doc.
func NewInput(doc *markup.Document) *Input {
	return &Input{Doc: doc, Geometry: Analyze(doc.PathData)}
}
