package service_test

import (
	"testing"

	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

func TestWeekSummaryZeroFillsDays(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	// entries on two of the seven days; Olive oil is 119 kcal per serving
	for _, day := range []string{"2026-05-11", "2026-05-13"} {
		if _, err := service.LogEntry(db, service.LogEntryInput{FoodRef: "Olive oil", Servings: 2, EatenOn: day}); err != nil {
			t.Fatalf("log entry for %s: %v", day, err)
		}
	}

	report, err := service.WeekSummary(db, "2026-05-14")
	if err != nil {
		t.Fatalf("week summary: %v", err)
	}
	if report.FromDate != "2026-05-08" || report.ToDate != "2026-05-14" {
		t.Fatalf("expected window 2026-05-08..2026-05-14, got %s..%s", report.FromDate, report.ToDate)
	}
	if len(report.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(report.Days))
	}
	if report.DaysWithEntries != 2 {
		t.Fatalf("expected 2 days with entries, got %d", report.DaysWithEntries)
	}
	if report.TotalCalories != 476 {
		t.Fatalf("expected 476 total kcal, got %d", report.TotalCalories)
	}
	if report.AvgCalories != 238 {
		t.Fatalf("expected 238 avg kcal over days with entries, got %v", report.AvgCalories)
	}
	for _, d := range report.Days {
		if d.Date == "2026-05-12" && d.HasEntries {
			t.Fatalf("expected 2026-05-12 to be zero-filled")
		}
	}
	if report.HighestDay == nil || report.LowestDay == nil {
		t.Fatalf("expected extreme days to be set")
	}
}

func TestWeekSummaryAvgProgress(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	report, err := service.WeekSummary(db, "2026-05-14")
	if err != nil {
		t.Fatalf("week summary without goal: %v", err)
	}
	if report.AvgProgress.Level != nutrition.LevelNoGoal {
		t.Fatalf("expected no-goal average progress, got %+v", report.AvgProgress)
	}

	if _, err := service.CreateGoal(db, service.CreateGoalInput{Name: "week goal", Calories: 200, Activate: true}); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	// one day at 238 kcal against a 200 kcal goal
	if _, err := service.LogEntry(db, service.LogEntryInput{FoodRef: "Olive oil", Servings: 2, EatenOn: "2026-05-12"}); err != nil {
		t.Fatalf("log entry: %v", err)
	}

	report, err = service.WeekSummary(db, "2026-05-14")
	if err != nil {
		t.Fatalf("week summary with goal: %v", err)
	}
	if !report.HasGoal || report.GoalName != "week goal" {
		t.Fatalf("expected goal in report, got %+v", report)
	}
	if report.AvgProgress.Level != nutrition.LevelExceeded {
		t.Fatalf("expected exceeded average progress, got %+v", report.AvgProgress)
	}
}
