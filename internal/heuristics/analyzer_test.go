package heuristics

import (
	"strings"
	"testing"

	"github.com/harukit/mekiki/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() model.ListingDraft {
	return model.ListingDraft{
		Title:        "PSA 10 Pikachu Promo Card",
		Description:  "Graded PSA 10.\n\n- Stored in a sleeve\n- Shipped with tracking",
		CategoryCode: "021",
		Condition:    model.ConditionGood,
		Price:        25000,
		ImageCount:   4,
	}
}

func TestAnalyze_CompleteDraftNoWarnings(t *testing.T) {
	report := NewAnalyzer().Analyze(completeDraft())

	assert.Empty(t, report.Warnings)
}

func TestAnalyze_BareDraft(t *testing.T) {
	// Five-character title clears the title rule; everything else fires.
	report := NewAnalyzer().Analyze(model.ListingDraft{Title: "PSA10"})

	require.Len(t, report.Warnings, 5)
	assert.NotContains(t, report.Warnings, WarnTitleTooShort)
	assert.Contains(t, report.Warnings, WarnDescriptionTooShort)
	assert.Contains(t, report.Warnings, WarnNoCategory)
	assert.Contains(t, report.Warnings, WarnNoCondition)
	assert.Contains(t, report.Warnings, WarnFewImages)
	assert.Contains(t, report.Warnings, WarnNoPrice)
}

func TestAnalyze_WarningOrder(t *testing.T) {
	report := NewAnalyzer().Analyze(model.ListingDraft{})

	// Rules are evaluated in declaration order.
	want := []string{
		WarnTitleTooShort,
		WarnDescriptionTooShort,
		WarnNoCategory,
		WarnNoCondition,
		WarnFewImages,
		WarnNoPrice,
	}
	assert.Equal(t, want, report.Warnings)
}

func TestAnalyze_TitleLength(t *testing.T) {
	tests := []struct {
		name  string
		title string
		warn  bool
	}{
		{name: "empty", title: "", warn: true},
		{name: "four chars", title: "PSA1", warn: true},
		{name: "five chars", title: "PSA10", warn: false},
		{name: "unicode counted by rune", title: "五文字の題", warn: false},
		{name: "whitespace trimmed", title: "  ab  ", warn: true},
	}

	a := NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := a.Analyze(model.ListingDraft{Title: tt.title})
			if tt.warn {
				assert.Contains(t, report.Warnings, WarnTitleTooShort)
			} else {
				assert.NotContains(t, report.Warnings, WarnTitleTooShort)
			}
		})
	}
}

func TestAnalyze_UnstructuredLongDescription(t *testing.T) {
	long := strings.Repeat("a very long unbroken description ", 12) // > 300 chars, no structure

	a := NewAnalyzer()

	report := a.Analyze(model.ListingDraft{Title: "Vintage camera body", Description: long})
	assert.Contains(t, report.Warnings, WarnUnstructuredDesc)

	// Same length with list markers passes.
	structured := long + "\n- item one\n- item two"
	report = a.Analyze(model.ListingDraft{Title: "Vintage camera body", Description: structured})
	assert.NotContains(t, report.Warnings, WarnUnstructuredDesc)

	// Section keywords also count as structure.
	withSections := long + " condition: used once. shipping: next day."
	report = a.Analyze(model.ListingDraft{Title: "Vintage camera body", Description: withSections})
	assert.NotContains(t, report.Warnings, WarnUnstructuredDesc)
}

func TestAnalyze_DenyList(t *testing.T) {
	a := NewAnalyzer()

	report := a.Analyze(model.ListingDraft{
		Title:       "Rare coin lot",
		Description: "Guaranteed investment, act now! NO RETURNS.",
	})
	assert.Contains(t, report.Warnings, WarnMisleadingLanguage)

	report = a.Analyze(model.ListingDraft{
		Title:       "Rare coin lot",
		Description: "Well preserved, happy to answer questions.",
	})
	assert.NotContains(t, report.Warnings, WarnMisleadingLanguage)
}

func TestAnalyze_CustomDenyList(t *testing.T) {
	a := NewAnalyzer(WithDenyList([]string{"special phrase"}))

	report := a.Analyze(model.ListingDraft{Title: "Something", Description: "A SPECIAL PHRASE indeed"})
	assert.Contains(t, report.Warnings, WarnMisleadingLanguage)

	// Default list no longer applies.
	report = a.Analyze(model.ListingDraft{Title: "Something", Description: "no returns accepted here"})
	assert.NotContains(t, report.Warnings, WarnMisleadingLanguage)
}

func TestAnalyze_Signal(t *testing.T) {
	report := NewAnalyzer().Analyze(model.ListingDraft{
		Title:       "Lens kit",
		Description: "First paragraph.\n\nSecond paragraph.\n- bullet",
	})

	assert.Equal(t, 8, report.Signal.TitleLen)
	assert.True(t, report.Signal.HasListMarkers)
	assert.True(t, report.Signal.HasParagraphBreak)
	assert.True(t, report.Signal.Structured())
}

func TestSpreadWarning(t *testing.T) {
	tests := []struct {
		name string
		r    model.PriceRange
		want bool
	}{
		{name: "narrow", r: model.PriceRange{Min: 9000, Max: 11000}, want: false},
		{name: "wide", r: model.PriceRange{Min: 4000, Max: 10000}, want: true},
		{name: "boundary not wide", r: model.PriceRange{Min: 6000, Max: 10000}, want: false},
		{name: "zero max", r: model.PriceRange{}, want: false},
		{name: "inverted", r: model.PriceRange{Min: 12000, Max: 10000}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warn, ok := SpreadWarning(tt.r)
			assert.Equal(t, tt.want, ok)
			if ok {
				assert.Equal(t, WarnWidePriceRange, warn)
			}
		})
	}
}

func TestMatchesDenyList(t *testing.T) {
	terms := []string{"uninspected", "no returns"}

	assert.True(t, MatchesDenyList("Sold as-is, UNINSPECTED", terms))
	assert.False(t, MatchesDenyList("fully tested and working", terms))
	assert.False(t, MatchesDenyList("anything", nil))
}
