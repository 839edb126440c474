package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggester_SuggestCategory(t *testing.T) {
	s := NewSuggester(NewMatcher(DefaultRules()))

	tests := []struct {
		name        string
		text        string
		currentCode string
		wantCode    string
		wantOK      bool
	}{
		{name: "new suggestion", text: "pokemon card lot", currentCode: "", wantCode: "011", wantOK: true},
		{name: "different from selection", text: "pokemon card lot", currentCode: "231", wantCode: "011", wantOK: true},
		{name: "equal to selection suppressed", text: "pokemon card lot", currentCode: "011", wantOK: false},
		{name: "no match", text: "vintage teacup", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := s.SuggestCategory(tt.text, tt.currentCode)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantCode, code)
			}
		})
	}
}

func TestSuggester_SuggestFromHint(t *testing.T) {
	s := NewSuggester(NewMatcher(DefaultRules()))

	code, ok := s.SuggestFromHint("camera")
	require.True(t, ok)
	assert.Equal(t, "231", code)

	// Case and whitespace are normalized.
	code, ok = s.SuggestFromHint("  Trading Card ")
	require.True(t, ok)
	assert.Equal(t, "010", code)

	_, ok = s.SuggestFromHint("spaceship")
	assert.False(t, ok)
}

func TestSuggester_SuggestTags(t *testing.T) {
	s := NewSuggester(NewMatcher(DefaultRules()))

	tags := s.SuggestTags("PSA 10 Pikachu", "Graded pokemon card, gem mint condition")

	assert.Contains(t, tags, "graded")
	assert.Contains(t, tags, "pokemon cards")
	assert.LessOrEqual(t, len(tags), 10)
}

func TestSuggester_SuggestTagsDeterministic(t *testing.T) {
	s := NewSuggester(NewMatcher(DefaultRules()))

	first := s.SuggestTags("Canon lens", "telephoto lens for canon mount, lens hood included")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, s.SuggestTags("Canon lens", "telephoto lens for canon mount, lens hood included"))
	}
}

func TestSuggester_SuggestTagsFrequencyWords(t *testing.T) {
	s := NewSuggester(NewMatcher(DefaultRules()))

	// No tag rule matches; the three most frequent words of 3+ characters
	// fill in, most frequent first.
	tags := s.SuggestTags("teacup teacup teacup", "antique antique porcelain")

	require.Len(t, tags, 3)
	assert.Equal(t, "teacup", tags[0])
	assert.Equal(t, "antique", tags[1])
	assert.Equal(t, "porcelain", tags[2])
}

func TestSuggester_SuggestTagsEmptyText(t *testing.T) {
	s := NewSuggester(NewMatcher(DefaultRules()))

	assert.Empty(t, s.SuggestTags("", ""))
}

func TestNewTagRule_InvalidPattern(t *testing.T) {
	r := NewTagRule(`([`, "broken")

	assert.False(t, r.re.MatchString("anything at all"))
	assert.False(t, r.re.MatchString(""))
}
