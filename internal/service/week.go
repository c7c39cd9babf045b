package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
)

type WeekDay struct {
	Date       string  `json:"date"`
	Calories   int     `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	HasEntries bool    `json:"has_entries"`
}

// WeekReport summarizes the seven days ending at ToDate. Days without
// entries appear zero-filled so the week is always complete; the averages
// only count days that have entries.
type WeekReport struct {
	FromDate        string             `json:"from_date"`
	ToDate          string             `json:"to_date"`
	Days            []WeekDay          `json:"days"`
	TotalCalories   int                `json:"total_calories"`
	TotalProteinG   float64            `json:"total_protein_g"`
	TotalCarbsG     float64            `json:"total_carbs_g"`
	TotalFatG       float64            `json:"total_fat_g"`
	DaysWithEntries int                `json:"days_with_entries"`
	AvgCalories     float64            `json:"avg_calories_per_day"`
	AvgProteinG     float64            `json:"avg_protein_per_day"`
	AvgCarbsG       float64            `json:"avg_carbs_per_day"`
	AvgFatG         float64            `json:"avg_fat_per_day"`
	HighestDay      *WeekDay           `json:"highest_day,omitempty"`
	LowestDay       *WeekDay           `json:"lowest_day,omitempty"`
	AvgProgress     nutrition.Progress `json:"avg_calorie_progress"`
	GoalName        string             `json:"goal_name,omitempty"`
	HasGoal         bool               `json:"has_goal"`
}

// WeekSummary builds the 7-day report ending at day (inclusive).
func WeekSummary(db *sql.DB, day string) (*WeekReport, error) {
	day, err := normalizeDay(day)
	if err != nil {
		return nil, err
	}
	to, err := time.ParseInLocation(dateLayout, day, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}
	from := to.AddDate(0, 0, -6)

	report := &WeekReport{
		FromDate: from.Format(dateLayout),
		ToDate:   to.Format(dateLayout),
	}

	summed, err := loadDayTotals(db, report.FromDate, report.ToDate)
	if err != nil {
		return nil, err
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		wd, ok := summed[date]
		if !ok {
			wd = WeekDay{Date: date}
		}
		report.Days = append(report.Days, wd)
		if !wd.HasEntries {
			continue
		}
		report.DaysWithEntries++
		report.TotalCalories += wd.Calories
		report.TotalProteinG += wd.ProteinG
		report.TotalCarbsG += wd.CarbsG
		report.TotalFatG += wd.FatG
	}
	report.TotalProteinG = nutrition.Round1(report.TotalProteinG)
	report.TotalCarbsG = nutrition.Round1(report.TotalCarbsG)
	report.TotalFatG = nutrition.Round1(report.TotalFatG)

	if report.DaysWithEntries > 0 {
		div := float64(report.DaysWithEntries)
		report.AvgCalories = float64(report.TotalCalories) / div
		report.AvgProteinG = report.TotalProteinG / div
		report.AvgCarbsG = report.TotalCarbsG / div
		report.AvgFatG = report.TotalFatG / div
		report.HighestDay, report.LowestDay = extremeDays(report.Days)
	}

	goal, err := ActiveGoal(db)
	if err != nil {
		return nil, err
	}
	if goal != nil {
		report.HasGoal = true
		report.GoalName = goal.Name
		report.AvgProgress = nutrition.ClassifyProgress(report.AvgCalories, float64(goal.Calories))
	} else {
		report.AvgProgress = nutrition.Progress{Level: nutrition.LevelNoGoal}
	}
	return report, nil
}

func loadDayTotals(db *sql.DB, from, to string) (map[string]WeekDay, error) {
	rows, err := db.Query(`
SELECT eaten_on, SUM(calories), SUM(protein_g), SUM(carbs_g), SUM(fat_g)
FROM diary_entries
WHERE eaten_on >= ? AND eaten_on <= ?
GROUP BY eaten_on
`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query day totals: %w", err)
	}
	defer rows.Close()

	out := map[string]WeekDay{}
	for rows.Next() {
		var wd WeekDay
		if err := rows.Scan(&wd.Date, &wd.Calories, &wd.ProteinG, &wd.CarbsG, &wd.FatG); err != nil {
			return nil, fmt.Errorf("scan day totals: %w", err)
		}
		wd.ProteinG = nutrition.Round1(wd.ProteinG)
		wd.CarbsG = nutrition.Round1(wd.CarbsG)
		wd.FatG = nutrition.Round1(wd.FatG)
		wd.HasEntries = true
		out[wd.Date] = wd
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day totals: %w", err)
	}
	return out, nil
}

func extremeDays(days []WeekDay) (*WeekDay, *WeekDay) {
	var high, low *WeekDay
	for i := range days {
		if !days[i].HasEntries {
			continue
		}
		if high == nil || days[i].Calories > high.Calories {
			high = &days[i]
		}
		if low == nil || days[i].Calories < low.Calories {
			low = &days[i]
		}
	}
	return high, low
}
