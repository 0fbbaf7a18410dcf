// Package clientstore mirrors the mobile client's on-device state: the
// caption language toggle and the locally cached reel-completion map that
// the app keeps alongside its server-side progress.
package clientstore

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// StorageKey is the fixed key the client persists its progress blob under.
const StorageKey = "streeskill_progress"

type Language string

const (
	LanguageHindi   Language = "hindi"
	LanguageEnglish Language = "english"
	LanguageTamil   Language = "tamil"
)

// ToggleLanguage advances the caption language through the fixed
// hindi -> english -> tamil -> hindi cycle. Unknown values reset to hindi.
func ToggleLanguage(current Language) Language {
	switch current {
	case LanguageHindi:
		return LanguageEnglish
	case LanguageEnglish:
		return LanguageTamil
	default:
		return LanguageHindi
	}
}

// Progress is the client-side completion cache, keyed by course id.
type Progress struct {
	CompletedReels map[string][]string `json:"completedReels"`
}

func NewProgress() Progress {
	return Progress{CompletedReels: map[string][]string{}}
}

// MarkReelComplete returns a copy of progress with the reel recorded under
// its course. Recording the same reel twice is a no-op.
func MarkReelComplete(progress Progress, courseID, reelID string) Progress {
	next := Progress{CompletedReels: make(map[string][]string, len(progress.CompletedReels))}
	for id, reels := range progress.CompletedReels {
		next.CompletedReels[id] = append([]string(nil), reels...)
	}

	for _, id := range next.CompletedReels[courseID] {
		if id == reelID {
			return next
		}
	}
	next.CompletedReels[courseID] = append(next.CompletedReels[courseID], reelID)

	return next
}

// CourseCompletion is the per-course summary the client renders.
type CourseCompletion struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// CalculateProgress counts completed reels for a course against its total.
func CalculateProgress(progress Progress, courseID string, totalReels int) CourseCompletion {
	return CourseCompletion{
		Completed: len(progress.CompletedReels[courseID]),
		Total:     totalReels,
	}
}

// Store persists one Progress blob as JSON in a directory, the way the
// client keeps a single value under its storage key.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, StorageKey+".json")
}

func (s *Store) Save(progress Progress) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(), data, 0644)
}

// Load reads the stored blob. A missing file yields empty progress, matching
// the client's first-launch behavior.
func (s *Store) Load() (Progress, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return NewProgress(), nil
		}
		return Progress{}, err
	}

	var progress Progress
	if err := json.Unmarshal(data, &progress); err != nil {
		return Progress{}, err
	}
	if progress.CompletedReels == nil {
		progress.CompletedReels = map[string][]string{}
	}

	return progress, nil
}
