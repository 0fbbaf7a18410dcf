package utils

import "math"

// ProgressPercent computes the completion percentage for a course.
// Rounds half away from zero like the client does; a course with no reels
// reports 0 instead of dividing by zero. The result stays in [0, 100] as
// long as completed never exceeds total: the unique progress index dedupes
// completions and recording rejects reels outside the course.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
