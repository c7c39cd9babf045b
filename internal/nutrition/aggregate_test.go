package nutrition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
)

func floatPtr(v float64) *float64 { return &v }

func TestAggregateDayEmpty(t *testing.T) {
	t.Parallel()

	goal := &nutrition.GoalTargets{Calories: 2000, ProteinG: floatPtr(150)}
	agg := nutrition.AggregateDay(nil, goal)

	assert.Equal(t, nutrition.DayTotals{}, agg.Totals)
	// zero consumed against a present goal is normal, not no-goal
	assert.Equal(t, nutrition.LevelNormal, agg.Calories.Level)
	assert.Equal(t, nutrition.LevelNormal, agg.Protein.Level)
	// absent macro targets stay no-goal
	assert.Equal(t, nutrition.LevelNoGoal, agg.Carbs.Level)
	assert.Equal(t, nutrition.LevelNoGoal, agg.Fat.Level)
}

func TestAggregateDayWithoutGoal(t *testing.T) {
	t.Parallel()

	entries := []nutrition.EntryTotals{
		{Calories: 420, ProteinG: 30, CarbsG: 45, FatG: 12},
		{Calories: 610, ProteinG: 41.5, CarbsG: 58.2, FatG: 21.3},
	}
	agg := nutrition.AggregateDay(entries, nil)

	assert.Equal(t, 1030, agg.Totals.Calories)
	assert.Equal(t, 71.5, agg.Totals.ProteinG)
	assert.Equal(t, 103.2, agg.Totals.CarbsG)
	assert.Equal(t, 33.3, agg.Totals.FatG)
	for _, p := range []nutrition.Progress{agg.Calories, agg.Protein, agg.Carbs, agg.Fat} {
		assert.Equal(t, nutrition.LevelNoGoal, p.Level)
	}
}

func TestAggregateDaySumRounding(t *testing.T) {
	t.Parallel()

	entries := []nutrition.EntryTotals{
		{ProteinG: 14.6666666},
		{ProteinG: 0.0},
	}
	agg := nutrition.AggregateDay(entries, nil)
	assert.Equal(t, 14.7, agg.Totals.ProteinG)
}

func TestAggregateDayIdempotent(t *testing.T) {
	t.Parallel()

	entries := []nutrition.EntryTotals{
		{Calories: 550, ProteinG: 45.3, CarbsG: 60.1, FatG: 14.9},
		{Calories: 320, ProteinG: 12.8, CarbsG: 41.7, FatG: 9.2},
		{Calories: 180, ProteinG: 6.1, CarbsG: 22.4, FatG: 4.4},
	}
	goal := &nutrition.GoalTargets{
		Calories: 2200,
		ProteinG: floatPtr(160),
		CarbsG:   floatPtr(240),
		FatG:     floatPtr(70),
	}

	first := nutrition.AggregateDay(entries, goal)
	second := nutrition.AggregateDay(entries, goal)
	assert.Equal(t, first, second)
}

func TestAggregateDayIndependentNutrients(t *testing.T) {
	t.Parallel()

	entries := []nutrition.EntryTotals{
		{Calories: 1000, ProteinG: 70},
		{Calories: 800, ProteinG: 65},
	}
	goal := &nutrition.GoalTargets{Calories: 2000, ProteinG: floatPtr(150)}
	agg := nutrition.AggregateDay(entries, goal)

	// both nutrients land exactly on the 90% boundary, classified
	// independently of each other
	require.Equal(t, 1800, agg.Totals.Calories)
	require.Equal(t, 135.0, agg.Totals.ProteinG)
	assert.Equal(t, nutrition.LevelApproaching, agg.Calories.Level)
	assert.Equal(t, 0.9, agg.Calories.Ratio)
	assert.Equal(t, nutrition.LevelApproaching, agg.Protein.Level)
	assert.Equal(t, 0.9, agg.Protein.Ratio)

	// carbs and fat targets are absent even though calories has a target
	assert.Equal(t, nutrition.LevelNoGoal, agg.Carbs.Level)
	assert.Equal(t, nutrition.LevelNoGoal, agg.Fat.Level)
}
