package rules

import (
	"log/slog"

	"github.com/gogpu/iconlint"
	"github.com/gogpu/iconlint/internal/ledger"
)

// Evaluator runs every rule against an icon. It is safe for concurrent
// use as long as its fields are not modified after the first Evaluate.
type Evaluator struct {
	Settings Settings
	// Catalog may be nil, in which case titles are only checked for format.
	Catalog Catalog
	// Ledger may be nil, in which case nothing is suppressed or recorded.
	Ledger *ledger.Ledger
}

// NewEvaluator returns an Evaluator with default settings.
func NewEvaluator(cat Catalog, l *ledger.Ledger) *Evaluator {
	return &Evaluator{Settings: DefaultSettings(), Catalog: cat, Ledger: l}
}

// Evaluate runs all rules and returns the diagnostics in rule order.
//
// Geometry failures for a path listed in a loaded ledger are dropped.
// With a regenerating ledger every geometry failure is reported and
// recorded. Malformed path data yields one path-syntax diagnostic and
// the geometry rules are skipped.
func (ev *Evaluator) Evaluate(in *Input) []Diagnostic {
	e := &env{settings: ev.Settings, catalog: ev.Catalog}
	var out []Diagnostic

	if in.PathErr != nil {
		out = append(out, Diagnostic{Rule: PathSyntax, Kind: KindMalformedPath, Message: in.PathErr.Error()})
	}

	for _, r := range All() {
		if r.Geometric() && in.PathErr != nil {
			continue
		}
		diags := r.check(in, e)
		if len(diags) == 0 || !r.Geometric() || ev.Ledger == nil {
			out = append(out, diags...)
			continue
		}
		out = append(out, ev.applyLedger(r, in, diags)...)
	}
	return out
}

func (ev *Evaluator) applyLedger(r Rule, in *Input, diags []Diagnostic) []Diagnostic {
	path := in.Path.Raw()
	switch ev.Ledger.Mode() {
	case ledger.Regenerating:
		ev.Ledger.Record(r.Name(), path, iconName(in.Doc.Title))
		return diags
	default:
		if ev.Ledger.Suppressed(r.Name(), path) {
			iconlint.Logger().Debug("rules: suppressed by ledger",
				slog.String("rule", r.Name()), slog.Int("count", len(diags)))
			return nil
		}
		return diags
	}
}
