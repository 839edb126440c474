// Package pattern maps free listing text to category codes through an
// ordered rule table. Earlier rules deliberately win over later ones:
// declaration order is the tie-break policy, not an accident.
package pattern

import (
	"regexp"
	"strings"
)

// Rule is one (pattern, category) mapping. Patterns are case-insensitive
// regular expressions matched against the combined title and description.
type Rule struct {
	Name         string
	Pattern      string
	CategoryCode string
}

// compiledRule pairs a rule with its compiled regex.
type compiledRule struct {
	re *regexp.Regexp
	Rule
}

// Matcher evaluates text against the rule table and returns the first
// matching category code.
type Matcher struct {
	rules []compiledRule
}

// NewMatcher compiles the given rules, preserving their order. Rules with
// invalid patterns are skipped rather than failing construction, so a bad
// entry in a config-supplied table cannot disable suggestions entirely.
func NewMatcher(rules []Rule) *Matcher {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		pat := r.Pattern
		if !strings.HasPrefix(pat, "(?i)") {
			pat = "(?i)" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			continue
		}
		compiled = append(compiled, compiledRule{Rule: r, re: re})
	}
	return &Matcher{rules: compiled}
}

// Match returns the category code of the first rule matching text, in
// declaration order. The second return is false when no rule matches.
func (m *Matcher) Match(text string) (string, bool) {
	for _, r := range m.rules {
		if r.re.MatchString(text) {
			return r.CategoryCode, true
		}
	}
	return "", false
}

// MatchRule is like Match but also returns the rule name, for
// explanations in CLI output.
func (m *Matcher) MatchRule(text string) (Rule, bool) {
	for _, r := range m.rules {
		if r.re.MatchString(text) {
			return r.Rule, true
		}
	}
	return Rule{}, false
}
