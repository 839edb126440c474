// Package heuristics implements the local text heuristics that check a
// listing draft for completeness and misleading language. Analysis is a
// pure function: same draft in, same warnings out, no I/O.
package heuristics

import (
	"regexp"
	"strings"

	"github.com/harukit/mekiki/internal/model"
)

// Length thresholds shared by the warning rules and the clarity axis.
const (
	MinTitleLen       = 5
	MinDescriptionLen = 20
	LongDescription   = 300
	MinImages         = 2
)

// WideSpreadThreshold is the relative price-range width above which a
// listing is considered imprecisely specified.
const WideSpreadThreshold = 0.4

var (
	listMarkerRe     = regexp.MustCompile(`\n\s*[-*・•]`)
	numberedListRe   = regexp.MustCompile(`\n\s*\d+\.`)
	paragraphBreakRe = regexp.MustCompile(`\n\n`)
)

// Signal is the unscored structural measurement of a draft's text,
// reused by the information-clarity risk axis.
type Signal struct {
	TitleLen           int
	DescriptionLen     int
	HasListMarkers     bool
	HasSectionKeywords bool
	HasParagraphBreak  bool
}

// Structured reports whether the description shows any structure at all:
// list markers, numbered lists, or paragraph breaks.
func (s Signal) Structured() bool {
	return s.HasListMarkers || s.HasParagraphBreak
}

// Report is the analyzer output: ordered warnings plus the structural
// signal.
type Report struct {
	Warnings []string
	Signal   Signal
}

// Analyzer scans listing text against a fixed, ordered rule table.
type Analyzer struct {
	denyList        []string
	sectionKeywords []string
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithDenyList replaces the default misleading-phrase deny-list. Terms are
// matched case-insensitively as substrings of title and description.
func WithDenyList(terms []string) Option {
	return func(a *Analyzer) {
		if len(terms) > 0 {
			a.denyList = terms
		}
	}
}

// WithSectionKeywords replaces the default section-heading keyword list
// used by the long-description structure check.
func WithSectionKeywords(keywords []string) Option {
	return func(a *Analyzer) {
		if len(keywords) > 0 {
			a.sectionKeywords = keywords
		}
	}
}

// NewAnalyzer creates an analyzer with the default term tables. The tables
// are product data, swappable per deployment via options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		denyList:        DefaultDenyList(),
		sectionKeywords: DefaultSectionKeywords(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Warning messages, emitted in rule declaration order.
const (
	WarnTitleTooShort       = "title is too short (5+ characters recommended)"
	WarnDescriptionTooShort = "description is too brief (20+ characters recommended)"
	WarnUnstructuredDesc    = "description is long but unstructured (bullet points or section headings recommended)"
	WarnNoCategory          = "category is not selected"
	WarnNoCondition         = "item condition is not selected"
	WarnFewImages           = "too few images (2+ recommended)"
	WarnNoPrice             = "price is not set"
	WarnMisleadingLanguage  = "potentially misleading language detected"
	WarnWidePriceRange      = "title or specs look generic and the market price range is wide (add model number, capacity, or grade)"
)

// Analyze evaluates every rule independently and returns all warnings that
// matched, in declaration order, along with the structural signal.
func (a *Analyzer) Analyze(draft model.ListingDraft) Report {
	title := strings.TrimSpace(draft.Title)
	desc := strings.TrimSpace(draft.Description)

	sig := Signal{
		TitleLen:           len([]rune(title)),
		DescriptionLen:     len([]rune(desc)),
		HasListMarkers:     listMarkerRe.MatchString(draft.Description) || numberedListRe.MatchString(draft.Description),
		HasSectionKeywords: containsAnyFold(desc, a.sectionKeywords),
		HasParagraphBreak:  paragraphBreakRe.MatchString(draft.Description),
	}

	var warnings []string
	if sig.TitleLen < MinTitleLen {
		warnings = append(warnings, WarnTitleTooShort)
	}
	if sig.DescriptionLen < MinDescriptionLen {
		warnings = append(warnings, WarnDescriptionTooShort)
	}
	if sig.DescriptionLen > LongDescription && !sig.HasListMarkers && !sig.HasSectionKeywords {
		warnings = append(warnings, WarnUnstructuredDesc)
	}
	if draft.CategoryCode == "" {
		warnings = append(warnings, WarnNoCategory)
	}
	if draft.Condition == "" {
		warnings = append(warnings, WarnNoCondition)
	}
	if draft.ImageCount < MinImages {
		warnings = append(warnings, WarnFewImages)
	}
	if draft.Price <= 0 {
		warnings = append(warnings, WarnNoPrice)
	}
	if containsAnyFold(draft.SearchText(), a.denyList) {
		warnings = append(warnings, WarnMisleadingLanguage)
	}

	return Report{Warnings: warnings, Signal: sig}
}

// SpreadWarning returns the wide-price-range warning when the suggested
// range from the AI service is too dispersed. The caller appends it after
// the base warnings because the range arrives asynchronously.
func SpreadWarning(r model.PriceRange) (string, bool) {
	if r.Max > 0 && r.Max > r.Min && r.Spread() > WideSpreadThreshold {
		return WarnWidePriceRange, true
	}
	return "", false
}

// MatchesDenyList reports whether the text contains a deny-list phrase.
// Reused by the authenticity axis with its own term table.
func MatchesDenyList(text string, terms []string) bool {
	return containsAnyFold(text, terms)
}

func containsAnyFold(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, t := range terms {
		if t == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
