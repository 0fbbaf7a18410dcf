package clientstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLanguageCycle(t *testing.T) {
	assert.Equal(t, LanguageEnglish, ToggleLanguage(LanguageHindi))
	assert.Equal(t, LanguageTamil, ToggleLanguage(LanguageEnglish))
	assert.Equal(t, LanguageHindi, ToggleLanguage(LanguageTamil))

	// Three toggles return to the start
	lang := LanguageHindi
	for i := 0; i < 3; i++ {
		lang = ToggleLanguage(lang)
	}
	assert.Equal(t, LanguageHindi, lang)
}

// The toggle is a 3-cycle, so a double toggle never restores the language.
// A hindi<->tamil two-way flip would need ToggleLanguage(hindi) == tamil,
// which does not hold: english sits between them.
func TestToggleLanguageIsNotTwoWay(t *testing.T) {
	assert.NotEqual(t, LanguageTamil, ToggleLanguage(LanguageHindi))
	assert.NotEqual(t, LanguageHindi, ToggleLanguage(ToggleLanguage(LanguageHindi)))
}

func TestToggleLanguageUnknownResetsToHindi(t *testing.T) {
	assert.Equal(t, LanguageHindi, ToggleLanguage(Language("klingon")))
	assert.Equal(t, LanguageHindi, ToggleLanguage(Language("")))
}

func TestMarkReelComplete(t *testing.T) {
	p := NewProgress()

	p1 := MarkReelComplete(p, "course-1", "reel-1")
	assert.Equal(t, []string{"reel-1"}, p1.CompletedReels["course-1"])

	// Original value untouched
	assert.Empty(t, p.CompletedReels["course-1"])

	// Marking again is a no-op
	p2 := MarkReelComplete(p1, "course-1", "reel-1")
	assert.Equal(t, []string{"reel-1"}, p2.CompletedReels["course-1"])

	p3 := MarkReelComplete(p2, "course-1", "reel-2")
	assert.Equal(t, []string{"reel-1", "reel-2"}, p3.CompletedReels["course-1"])

	// Courses are independent
	p4 := MarkReelComplete(p3, "course-2", "reel-1")
	assert.Equal(t, []string{"reel-1"}, p4.CompletedReels["course-2"])
	assert.Equal(t, []string{"reel-1", "reel-2"}, p4.CompletedReels["course-1"])
}

func TestCalculateProgress(t *testing.T) {
	p := NewProgress()
	p = MarkReelComplete(p, "course-1", "reel-1")
	p = MarkReelComplete(p, "course-1", "reel-2")

	got := CalculateProgress(p, "course-1", 6)
	assert.Equal(t, CourseCompletion{Completed: 2, Total: 6}, got)

	// Unknown course counts zero completions
	assert.Equal(t, CourseCompletion{Completed: 0, Total: 5}, CalculateProgress(p, "course-9", 5))
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	p := NewProgress()
	p = MarkReelComplete(p, "course-1", "reel-1")
	p = MarkReelComplete(p, "course-1", "reel-3")
	p = MarkReelComplete(p, "course-2", "reel-7")

	require.NoError(t, store.Save(p))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, loaded.CompletedReels)
	assert.Empty(t, loaded.CompletedReels)
}
