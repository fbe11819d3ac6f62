package narrative

import (
	"strings"

	"NarrativeScanner/internal/domain"
)

// MinNarratives is the floor enforced by the default fallback.
const MinNarratives = 2

// Detector evaluates keyword rules against the aggregated signal text.
type Detector struct {
	rules    []Rule
	defaults []domain.Narrative
}

// NewDetector builds a detector. Nil arguments fall back to the built-in tables.
func NewDetector(rules []Rule, defaults []domain.Narrative) *Detector {
	if rules == nil {
		rules = DefaultRules()
	}
	if defaults == nil {
		defaults = DefaultNarratives()
	}
	return &Detector{rules: rules, defaults: defaults}
}

// Detect returns every narrative whose keyword group occurs in the signals,
// topped up with the defaults when fewer than MinNarratives matched.
// Matching is a case-insensitive substring test without tokenisation.
func (d *Detector) Detect(signals []domain.Signal) []domain.Narrative {
	blob := corpus(signals)

	found := make([]domain.Narrative, 0, len(d.rules))
	for _, rule := range d.rules {
		if matchesAny(blob, rule.Keywords) {
			found = append(found, rule.narrative())
		}
	}

	if len(found) < MinNarratives {
		found = append(found, d.defaults...)
	}

	return found
}

// Rules returns a copy of the detector's rule list.
func (d *Detector) Rules() []Rule {
	out := make([]Rule, len(d.rules))
	copy(out, d.rules)
	return out
}

func corpus(signals []domain.Signal) string {
	var b strings.Builder
	for _, s := range signals {
		for _, snippet := range s.Data {
			b.WriteString(snippet)
			b.WriteByte(' ')
		}
	}
	return strings.ToLower(b.String())
}

func matchesAny(blob string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw != "" && strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}
