package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"no reels", 0, 0, 0},
		{"nothing completed", 0, 6, 0},
		{"half", 3, 6, 50},
		{"all", 6, 6, 100},
		{"rounds up", 1, 3, 33},
		{"rounds half up", 1, 8, 13},
		{"two of seven", 2, 7, 29},
		{"negative total", 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressPercent(tt.completed, tt.total))
		})
	}
}

func TestProgressPercentMonotone(t *testing.T) {
	prev := 0
	for completed := 0; completed <= 7; completed++ {
		got := ProgressPercent(completed, 7)
		assert.GreaterOrEqual(t, got, prev)
		assert.LessOrEqual(t, got, 100)
		prev = got
	}
}
