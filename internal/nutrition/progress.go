// Package nutrition holds the pure calculation rules of the diary: progress
// classification against a target, meal-category bucketing by time of day,
// whole-day aggregation, and date-navigation clamping. Everything here is
// deterministic and free of I/O so it can be recomputed on any snapshot.
package nutrition

import "math"

// Level classifies how consumed intake relates to a target.
type Level string

const (
	LevelNoGoal      Level = "no_goal"
	LevelNormal      Level = "normal"
	LevelApproaching Level = "approaching"
	LevelExceeded    Level = "exceeded"
)

// approachingRatio is the lower bound (inclusive) of the approaching band.
const approachingRatio = 0.90

// Progress is the result of classifying consumed intake against a target.
// When Level is LevelNoGoal, Ratio and Remaining carry no meaning.
type Progress struct {
	Level     Level
	Ratio     float64
	Remaining float64
}

// ClassifyProgress maps consumed intake and a target to a progress level.
// A missing, zero, or negative goal yields LevelNoGoal. Otherwise the ratio
// consumed/goal buckets into normal (< 90%), approaching (90% up to and
// including exactly 100%), or exceeded (> 100%). The ratio is never clamped;
// any capping of extreme values is a display concern. Remaining is the goal
// minus consumed, rounded to one decimal place.
func ClassifyProgress(consumed, goal float64) Progress {
	if goal <= 0 {
		return Progress{Level: LevelNoGoal}
	}
	ratio := consumed / goal
	p := Progress{
		Ratio:     ratio,
		Remaining: Round1(goal - consumed),
	}
	switch {
	case ratio < approachingRatio:
		p.Level = LevelNormal
	case ratio <= 1.0:
		// hitting exactly 100% still counts as approaching, not exceeded
		p.Level = LevelApproaching
	default:
		p.Level = LevelExceeded
	}
	return p
}

// Round1 rounds half-up at the tenths digit.
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
