// Package diagnosis turns extracted lab-report text into ranked disease
// candidates by evaluating a fixed rule catalog over the report's lab values.
package diagnosis

import (
	"regexp"
	"strconv"
	"strings"
)

// Panel maps lab parameter names to the values found in one report.
// Parameters absent from the text are absent from the panel, never defaulted.
type Panel map[string]float64

// Candidate is one ranked diagnosis.
type Candidate struct {
	Disease    string   `json:"disease"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

// SentinelDisease is reported when no rule matches.
const SentinelDisease = "No significant abnormality detected"

type paramMatcher struct {
	name string
	re   *regexp.Regexp
}

var paramMatchers = buildMatchers()

var ranges = func() map[string]labParam {
	m := make(map[string]labParam, len(labCatalog))
	for _, p := range labCatalog {
		m[p.Name] = p
	}
	return m
}()

func buildMatchers() []paramMatcher {
	matchers := make([]paramMatcher, 0, len(labCatalog))
	for _, p := range labCatalog {
		// The parameter name as printed in reports, followed by the
		// nearest subsequent decimal number.
		pattern := regexp.QuoteMeta(strings.ReplaceAll(p.Name, "_", " ")) + `[^0-9]*([0-9.]+)`
		matchers = append(matchers, paramMatcher{name: p.Name, re: regexp.MustCompile(pattern)})
	}
	return matchers
}

// Extract builds a lab panel from lower-cased report text. For each catalog
// parameter only the first occurrence is recorded.
func Extract(text string) Panel {
	panel := make(Panel)
	for _, m := range paramMatchers {
		groups := m.re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.Trim(groups[1], "."), 64)
		if err != nil {
			continue
		}
		panel[m.name] = value
	}
	return panel
}

// Status classifies a value against the parameter's reference range.
// Boundary values are normal.
func Status(param string, value float64) string {
	r, ok := ranges[param]
	if !ok {
		return StatusNormal
	}
	switch {
	case value < r.Low:
		return StatusLow
	case value > r.High:
		return StatusHigh
	default:
		return StatusNormal
	}
}

// matchRule evaluates one rule against an immutable panel snapshot. Every
// condition must be satisfiable; there is no partial credit.
func matchRule(rule Rule, panel Panel) (Candidate, bool) {
	evidence := make([]string, 0, len(rule.Conditions))
	for _, cond := range rule.Conditions {
		value, ok := panel[cond.Param]
		if !ok {
			return Candidate{}, false
		}
		s := Status(cond.Param, value)
		if cond.Expected == StatusAbnormal {
			if s == StatusNormal {
				return Candidate{}, false
			}
		} else if s != cond.Expected {
			return Candidate{}, false
		}
		evidence = append(evidence, cond.Param+" is "+s)
	}
	return Candidate{Disease: rule.Disease, Confidence: 100.0, Evidence: evidence}, true
}

// Infer collects every matching rule in catalog definition order. All matches
// are binary, so catalog order is the ranking. With no match at all a single
// sentinel candidate is returned.
func Infer(panel Panel) []Candidate {
	var results []Candidate
	for _, rule := range ruleCatalog {
		if c, ok := matchRule(rule, panel); ok {
			results = append(results, c)
		}
	}
	if len(results) == 0 {
		return []Candidate{{Disease: SentinelDisease, Confidence: 95.0, Evidence: []string{}}}
	}
	return results
}

// Narrative renders the candidate list for display: every candidate, then the
// most likely one with its confidence and evidence. The sentinel candidate is
// shown without a confidence figure.
func Narrative(candidates []Candidate) string {
	top := candidates[0]

	var b strings.Builder
	b.WriteString("POSSIBLE CONDITIONS:")
	for _, c := range candidates {
		b.WriteString("\n• " + c.Disease)
	}

	b.WriteString("\n\nMOST LIKELY CONDITION:\n")
	if top.Disease == SentinelDisease {
		b.WriteString("→ " + top.Disease)
	} else {
		b.WriteString("→ " + top.Disease + " (" + strconv.FormatFloat(top.Confidence, 'f', 1, 64) + "%)")
	}

	if len(top.Evidence) > 0 {
		b.WriteString("\n\nReason:")
		for _, e := range top.Evidence {
			b.WriteString("\n• " + e)
		}
	}
	return b.String()
}
