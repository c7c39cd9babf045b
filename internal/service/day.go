package service

import (
	"database/sql"

	"github.com/thelsien/Snaxlog-sub000/internal/model"
	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
)

// DayReport is the derived view of one diary day: the entries in display
// order, the summed totals, and four progress classifications against the
// active goal. It is recomputed from scratch on every call.
type DayReport struct {
	Date     string              `json:"date"`
	Totals   nutrition.DayTotals `json:"totals"`
	Calories nutrition.Progress  `json:"calories"`
	Protein  nutrition.Progress  `json:"protein"`
	Carbs    nutrition.Progress  `json:"carbs"`
	Fat      nutrition.Progress  `json:"fat"`
	GoalName string              `json:"goal_name,omitempty"`
	HasGoal  bool                `json:"has_goal"`
	Entries  []model.DiaryEntry  `json:"entries"`
}

// DaySummary aggregates the diary for one date. An empty diary yields the
// zero state, never an error about missing data.
func DaySummary(db *sql.DB, day string) (*DayReport, error) {
	day, err := normalizeDay(day)
	if err != nil {
		return nil, err
	}

	entries, err := EntriesForDay(db, day)
	if err != nil {
		return nil, err
	}
	goal, err := ActiveGoal(db)
	if err != nil {
		return nil, err
	}

	totals := make([]nutrition.EntryTotals, 0, len(entries))
	for _, e := range entries {
		totals = append(totals, nutrition.EntryTotals{
			Calories: e.Calories,
			ProteinG: e.ProteinG,
			CarbsG:   e.CarbsG,
			FatG:     e.FatG,
		})
	}
	agg := nutrition.AggregateDay(totals, Targets(goal))

	report := &DayReport{
		Date:     day,
		Totals:   agg.Totals,
		Calories: agg.Calories,
		Protein:  agg.Protein,
		Carbs:    agg.Carbs,
		Fat:      agg.Fat,
		Entries:  entries,
	}
	if goal != nil {
		report.HasGoal = true
		report.GoalName = goal.Name
	}
	return report, nil
}
