package nutrition

// EntryTotals is the nutrient snapshot of one diary entry as stored.
type EntryTotals struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// GoalTargets is the active goal's targets. The calorie target is required
// on every goal; the macro targets are each independently optional.
type GoalTargets struct {
	Calories int
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
}

// DayTotals is the summed intake for one calendar day. Macro gram sums are
// rounded to one decimal place; calories stay integral.
type DayTotals struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// DayAggregate is the derived, non-persisted view of one day: summed totals
// plus four independent progress classifications.
type DayAggregate struct {
	Totals   DayTotals
	Calories Progress
	Protein  Progress
	Carbs    Progress
	Fat      Progress
}

// AggregateDay sums the entries for one day and classifies each nutrient
// against the active goal. Each macro falls back to LevelNoGoal on its own
// when that specific target is absent, even when the calorie target exists;
// a nil goal puts every nutrient at LevelNoGoal. The computation is total
// and idempotent: it always recomputes from scratch over the full entry set.
func AggregateDay(entries []EntryTotals, goal *GoalTargets) DayAggregate {
	var agg DayAggregate
	var protein, carbs, fat float64
	for _, e := range entries {
		agg.Totals.Calories += e.Calories
		protein += e.ProteinG
		carbs += e.CarbsG
		fat += e.FatG
	}
	agg.Totals.ProteinG = Round1(protein)
	agg.Totals.CarbsG = Round1(carbs)
	agg.Totals.FatG = Round1(fat)

	if goal == nil {
		agg.Calories = Progress{Level: LevelNoGoal}
		agg.Protein = Progress{Level: LevelNoGoal}
		agg.Carbs = Progress{Level: LevelNoGoal}
		agg.Fat = Progress{Level: LevelNoGoal}
		return agg
	}
	agg.Calories = ClassifyProgress(float64(agg.Totals.Calories), float64(goal.Calories))
	agg.Protein = classifyOptional(agg.Totals.ProteinG, goal.ProteinG)
	agg.Carbs = classifyOptional(agg.Totals.CarbsG, goal.CarbsG)
	agg.Fat = classifyOptional(agg.Totals.FatG, goal.FatG)
	return agg
}

func classifyOptional(consumed float64, target *float64) Progress {
	if target == nil {
		return Progress{Level: LevelNoGoal}
	}
	return ClassifyProgress(consumed, *target)
}
