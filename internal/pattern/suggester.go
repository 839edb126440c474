package pattern

import (
	"regexp"
	"sort"
	"strings"
)

// Suggester proposes a category for a draft from its free text. It never
// mutates the draft; the caller decides whether to apply a suggestion.
type Suggester struct {
	matcher       *Matcher
	hintCategory  map[string]string
	tagRules      []TagRule
	tagWordRe     *regexp.Regexp
	maxSuggestion int
}

// TagRule maps a text pattern to a suggested tag.
type TagRule struct {
	re  *regexp.Regexp
	Tag string
}

// NewTagRule compiles a case-insensitive tag rule. Invalid patterns
// return a rule that never matches.
func NewTagRule(pattern, tag string) TagRule {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		re = regexp.MustCompile(`\b\B`)
	}
	return TagRule{re: re, Tag: tag}
}

// DefaultTagRules returns the built-in tag suggestion pairs.
func DefaultTagRules() []TagRule {
	return []TagRule{
		NewTagRule(`psa\s*10|bgs|cgc|graded`, "graded"),
		NewTagRule(`pokemon`, "pokemon cards"),
		NewTagRule(`yu-?gi-?oh`, "yugioh cards"),
		NewTagRule(`one\s*piece`, "one piece cards"),
		NewTagRule(`sony|canon|nikon|fujifilm|leica`, "camera"),
		NewTagRule(`\blens\b|telephoto|prime\s*lens`, "lens"),
		NewTagRule(`javascript|python|rust|react|docker|kubernetes`, "tech books"),
		NewTagRule(`macbook|thinkpad|ryzen|rtx|ssd|nvme`, "pc parts"),
		NewTagRule(`jordan|yeezy|dunk|new\s*balance`, "sneakers"),
		NewTagRule(`switch|ps5|retro\s*game|famicom`, "games"),
	}
}

// NewSuggester creates a suggester over the default rule tables.
func NewSuggester(matcher *Matcher) *Suggester {
	return &Suggester{
		matcher:       matcher,
		hintCategory:  DefaultHintCategories(),
		tagRules:      DefaultTagRules(),
		tagWordRe:     regexp.MustCompile(`[a-zA-Z0-9]{3,}`),
		maxSuggestion: 10,
	}
}

// SuggestCategory returns a category code proposal for the given text, or
// false when no rule matches or the suggestion equals the currently
// selected code. Suppressing the no-op suggestion is deliberate: a
// suggestion identical to the selection is noise.
func (s *Suggester) SuggestCategory(text, currentCode string) (string, bool) {
	code, ok := s.matcher.Match(text)
	if !ok || code == currentCode {
		return "", false
	}
	return code, true
}

// SuggestFromHint maps an external image analysis label to a category
// code. Unknown labels return false.
func (s *Suggester) SuggestFromHint(label string) (string, bool) {
	code, ok := s.hintCategory[strings.ToLower(strings.TrimSpace(label))]
	return code, ok
}

// SuggestTags proposes up to ten tags from the title and description:
// keyword-pair matches first, then the three most frequent words of three
// or more characters.
func (s *Suggester) SuggestTags(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	var out []string
	seen := make(map[string]bool)
	add := func(tag string) {
		if tag == "" || seen[tag] || len(out) >= s.maxSuggestion {
			return
		}
		seen[tag] = true
		out = append(out, tag)
	}

	for _, r := range s.tagRules {
		if r.re.MatchString(text) {
			add(r.Tag)
		}
	}

	words := s.tagWordRe.FindAllString(text, -1)
	freq := make(map[string]int)
	for _, w := range words {
		freq[w]++
	}
	type wc struct {
		word  string
		count int
	}
	ranked := make([]wc, 0, len(freq))
	for w, c := range freq {
		ranked = append(ranked, wc{w, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})
	for i := 0; i < len(ranked) && i < 3; i++ {
		add(ranked[i].word)
	}

	return out
}
