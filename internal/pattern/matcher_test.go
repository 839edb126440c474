package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCode string
		wantOK   bool
	}{
		{name: "graded card", text: "PSA 10 Pikachu promo", wantCode: "021", wantOK: true},
		{name: "pokemon ungraded", text: "Pokemon card bundle", wantCode: "011", wantOK: true},
		{name: "case insensitive", text: "POKEMON CARD BUNDLE", wantCode: "011", wantOK: true},
		{name: "camera lens", text: "Canon telephoto lens 70-200mm", wantCode: "232", wantOK: true},
		{name: "technical book", text: "Learning Python, 2nd edition", wantCode: "131", wantOK: true},
		{name: "sneakers", text: "Nike Air Jordan 1 high", wantCode: "521", wantOK: true},
		{name: "no match", text: "handmade ceramic mug", wantOK: false},
		{name: "empty text", text: "", wantOK: false},
	}

	m := NewMatcher(DefaultRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := m.Match(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantCode, code)
			}
		})
	}
}

func TestMatcher_FirstMatchWins(t *testing.T) {
	m := NewMatcher([]Rule{
		{Name: "First", Pattern: `camera`, CategoryCode: "AAA"},
		{Name: "Second", Pattern: `camera body`, CategoryCode: "BBB"},
	})

	code, ok := m.Match("mirrorless camera body")
	require.True(t, ok)
	assert.Equal(t, "AAA", code, "declaration order is the tie-break")
}

func TestMatcher_Deterministic(t *testing.T) {
	m := NewMatcher(DefaultRules())

	first, ok := m.Match("PSA graded Pokemon card")
	require.True(t, ok)
	for i := 0; i < 50; i++ {
		code, ok := m.Match("PSA graded Pokemon card")
		require.True(t, ok)
		require.Equal(t, first, code)
	}
}

func TestMatcher_InvalidPatternSkipped(t *testing.T) {
	m := NewMatcher([]Rule{
		{Name: "Broken", Pattern: `([`, CategoryCode: "XXX"},
		{Name: "Valid", Pattern: `camera`, CategoryCode: "231"},
	})

	code, ok := m.Match("camera gear")
	require.True(t, ok)
	assert.Equal(t, "231", code)

	_, ok = m.Match("([")
	assert.False(t, ok, "broken rule must not match anything")
}

func TestMatcher_MatchRule(t *testing.T) {
	m := NewMatcher(DefaultRules())

	rule, ok := m.MatchRule("Yu-Gi-Oh Blue Eyes")
	require.True(t, ok)
	assert.Equal(t, "012", rule.CategoryCode)
	assert.NotEmpty(t, rule.Name)
}

func TestGradedBeatsSeriesRules(t *testing.T) {
	// A graded Pokemon card is a graded card first: the grading rule sits
	// above the series rules in the table.
	m := NewMatcher(DefaultRules())

	code, ok := m.Match("BGS 9.5 Charizard pokemon card")
	require.True(t, ok)
	assert.Equal(t, "021", code)
}
