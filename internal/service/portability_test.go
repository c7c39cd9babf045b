package service_test

import (
	"testing"

	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	source := newTestDB(t)
	defer source.Close()

	if _, err := service.CreateGoal(source, service.CreateGoalInput{
		Name:     "travel goal",
		Calories: 2200,
		ProteinG: floatPtr(160),
		Activate: true,
	}); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	for _, day := range []string{"2026-06-01", "2026-06-02"} {
		if _, err := service.LogEntry(source, service.LogEntryInput{
			FoodRef:  "Greek yogurt",
			Servings: 1.5,
			EatenOn:  day,
			Notes:    "with honey",
		}); err != nil {
			t.Fatalf("log entry for %s: %v", day, err)
		}
	}

	data, err := service.ExportSnapshot(source)
	if err != nil {
		t.Fatalf("export snapshot: %v", err)
	}
	if len(data.Entries) != 2 {
		t.Fatalf("expected 2 exported entries, got %d", len(data.Entries))
	}
	if len(data.Goals) != 1 || data.Goals[0].Name != "travel goal" {
		t.Fatalf("expected only the user goal to export, got %+v", data.Goals)
	}

	target := newTestDB(t)
	defer target.Close()

	report, err := service.ImportSnapshot(target, data)
	if err != nil {
		t.Fatalf("import snapshot: %v", err)
	}
	if report.EntriesImported != 2 || report.GoalsImported != 1 {
		t.Fatalf("unexpected import report: %+v", report)
	}

	active, err := service.ActiveGoal(target)
	if err != nil {
		t.Fatalf("active goal after import: %v", err)
	}
	if active == nil || active.Name != "travel goal" {
		t.Fatalf("expected travel goal active after import, got %+v", active)
	}

	entries, err := service.EntriesForDay(target, "2026-06-01")
	if err != nil {
		t.Fatalf("entries after import: %v", err)
	}
	if len(entries) != 1 || entries[0].FoodName != "Greek yogurt" {
		t.Fatalf("expected imported yogurt entry, got %+v", entries)
	}
	if entries[0].Notes != "with honey" {
		t.Fatalf("expected notes to survive the round trip, got %q", entries[0].Notes)
	}
	// totals recompute from the local catalog: 146 kcal * 1.5
	if entries[0].Calories != 219 {
		t.Fatalf("expected 219 kcal, got %d", entries[0].Calories)
	}
}

func TestImportSkipsUnknownFoods(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	data := &service.ExportData{
		Entries: []service.ExportEntry{
			{Food: "No such dish", Servings: 1, EatenOn: "2026-06-01", LoggedAt: "2026-06-01T12:00:00Z"},
			{Food: "Apple", Servings: 1, EatenOn: "2026-06-01", LoggedAt: "2026-06-01T12:30:00Z"},
		},
	}
	report, err := service.ImportSnapshot(db, data)
	if err != nil {
		t.Fatalf("import snapshot: %v", err)
	}
	if report.EntriesImported != 1 || report.Skipped != 1 {
		t.Fatalf("expected 1 imported and 1 skipped, got %+v", report)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("expected a warning for the unknown food, got %v", report.Warnings)
	}
}
