package searchController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSuggestionsCombinesTrendingAndCourses(t *testing.T) {
	got := BuildSuggestions("pickle", []string{"Pickle Making"})

	assert.Equal(t, []Suggestion{
		{Text: "pickle recipe", Type: "trending"},
		{Text: "Pickle Making", Type: "course"},
	}, got)
}

func TestBuildSuggestionsIsCaseInsensitiveOnQuery(t *testing.T) {
	got := BuildSuggestions("PICKLE", nil)

	assert.Equal(t, []Suggestion{{Text: "pickle recipe", Type: "trending"}}, got)
}

func TestBuildSuggestionsTrendingComesFirst(t *testing.T) {
	got := BuildSuggestions("design", []string{"Jewelry Design"})

	// Trending matches precede course titles, in list order
	assert.Equal(t, []Suggestion{
		{Text: "mehndi design", Type: "trending"},
		{Text: "jewelry design", Type: "trending"},
		{Text: "Jewelry Design", Type: "course"},
	}, got)
}

func TestBuildSuggestionsCap(t *testing.T) {
	titles := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

	// Empty needle matches every trending term; the cap kicks in before any
	// course title is reached.
	got := BuildSuggestions("", titles)
	assert.Len(t, got, 8)
	for _, s := range got {
		assert.Equal(t, "trending", s.Type)
	}

	got = BuildSuggestions("zzz", titles)
	assert.Len(t, got, 8)
	for _, s := range got {
		assert.Equal(t, "course", s.Type)
	}
}

func TestBuildSuggestionsNoMatches(t *testing.T) {
	got := BuildSuggestions("quantum", nil)
	assert.Empty(t, got)
}
