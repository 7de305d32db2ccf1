package rules

import "fmt"

// Rule is one of the fixed set of checks. Rules are dispatched by value;
// each one is a pure function of the Input and its environment.
type Rule uint8

// The checks, in the order they run.
const (
	Elements Rule = iota
	Attributes
	Title
	Size
	Precision
	IneffectiveSegments
	Extraneous
	Centered

	numRules
)

var ruleNames = [numRules]string{
	Elements:            "elm",
	Attributes:          "attr",
	Title:               "icon-title",
	Size:                "icon-size",
	Precision:           "icon-precision",
	IneffectiveSegments: "ineffective-segments",
	Extraneous:          "extraneous",
	Centered:            "icon-centered",
}

// All returns every rule in evaluation order.
func All() []Rule {
	out := make([]Rule, numRules)
	for i := range out {
		out[i] = Rule(i)
	}
	return out
}

// ByName returns the rule with the given name.
func ByName(name string) (Rule, bool) {
	for i, n := range ruleNames {
		if n == name {
			return Rule(i), true
		}
	}
	return 0, false
}

// Name returns the stable name used in diagnostics and the ledger.
func (r Rule) Name() string {
	if r < numRules {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

func (r Rule) String() string {
	return r.Name()
}

// Geometric reports whether the rule analyzes the path geometry. Only
// geometric rules need a well-formed path, and only they can be listed
// in the ledger.
func (r Rule) Geometric() bool {
	switch r {
	case Size, Precision, IneffectiveSegments, Centered:
		return true
	}
	return false
}

// env is the read-only environment shared by every rule.
type env struct {
	settings Settings
	catalog  Catalog
}

// check runs the rule against in.
func (r Rule) check(in *Input, e *env) []Diagnostic {
	switch r {
	case Elements:
		return checkElements(in, e)
	case Attributes:
		return checkAttributes(in, e)
	case Title:
		return checkTitle(in, e)
	case Size:
		return checkSize(in, e)
	case Precision:
		return checkPrecision(in, e)
	case IneffectiveSegments:
		return checkIneffectiveSegments(in, e)
	case Extraneous:
		return checkExtraneous(in, e)
	case Centered:
		return checkCentered(in, e)
	}
	return nil
}
