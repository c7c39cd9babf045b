package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
)

// ExportEntry references its food by name so a snapshot stays portable
// across databases; totals are recomputed from the catalog on import.
type ExportEntry struct {
	Food     string  `json:"food"`
	Servings float64 `json:"servings"`
	EatenOn  string  `json:"eaten_on"`
	LoggedAt string  `json:"logged_at"`
	Meal     string  `json:"meal,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

type ExportGoal struct {
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	ProteinG *float64 `json:"protein_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	FatG     *float64 `json:"fat_g,omitempty"`
	IsActive bool     `json:"is_active"`
}

type ExportData struct {
	ExportedAt string        `json:"exported_at"`
	Entries    []ExportEntry `json:"entries"`
	Goals      []ExportGoal  `json:"goals"`
}

type ImportReport struct {
	EntriesImported int
	GoalsImported   int
	Skipped         int
	Warnings        []string
}

// ExportSnapshot captures all diary entries and the user-created goals.
// Predefined goals are not exported; every database seeds its own.
func ExportSnapshot(db *sql.DB) (*ExportData, error) {
	data := &ExportData{
		ExportedAt: time.Now().Format(time.RFC3339),
		Entries:    make([]ExportEntry, 0),
		Goals:      make([]ExportGoal, 0),
	}

	rows, err := db.Query(`
SELECT f.name, e.servings, e.eaten_on, e.logged_at, e.meal, e.notes
FROM diary_entries e
JOIN foods f ON f.id = e.food_id
ORDER BY e.eaten_on ASC, e.logged_at ASC
`)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e ExportEntry
		if err := rows.Scan(&e.Food, &e.Servings, &e.EatenOn, &e.LoggedAt, &e.Meal, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan export entry: %w", err)
		}
		data.Entries = append(data.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate export entries: %w", err)
	}

	goals, err := ListGoals(db)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		if g.IsPredefined {
			continue
		}
		data.Goals = append(data.Goals, ExportGoal{
			Name:     g.Name,
			Calories: g.Calories,
			ProteinG: g.ProteinG,
			CarbsG:   g.CarbsG,
			FatG:     g.FatG,
			IsActive: g.IsActive,
		})
	}
	return data, nil
}

// ImportSnapshot merges a snapshot into the store. Entries referencing foods
// missing from the local catalog are skipped with a warning rather than
// failing the whole import; goals upsert by name.
func ImportSnapshot(db *sql.DB, data *ExportData) (ImportReport, error) {
	report := ImportReport{}
	if data == nil {
		return report, fmt.Errorf("import data is empty")
	}

	for i, g := range data.Goals {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return report, fmt.Errorf("import goal %d has no name", i)
		}
		existing, err := GoalByRef(db, name)
		if err == nil {
			if existing.IsPredefined {
				report.Skipped++
				report.Warnings = append(report.Warnings, fmt.Sprintf("goal %q collides with a predefined goal; skipped", name))
				continue
			}
			if err := UpdateGoal(db, UpdateGoalInput{
				Ref:      strconv.FormatInt(existing.ID, 10),
				Name:     name,
				Calories: g.Calories,
				ProteinG: g.ProteinG,
				CarbsG:   g.CarbsG,
				FatG:     g.FatG,
			}); err != nil {
				return report, fmt.Errorf("import goal %q: %w", name, err)
			}
		} else {
			if _, err := CreateGoal(db, CreateGoalInput{
				Name:     name,
				Calories: g.Calories,
				ProteinG: g.ProteinG,
				CarbsG:   g.CarbsG,
				FatG:     g.FatG,
			}); err != nil {
				return report, fmt.Errorf("import goal %q: %w", name, err)
			}
		}
		if g.IsActive {
			if err := ActivateGoal(db, name); err != nil {
				return report, fmt.Errorf("activate imported goal %q: %w", name, err)
			}
		}
		report.GoalsImported++
	}

	for i, e := range data.Entries {
		loggedAt, err := time.Parse(time.RFC3339, e.LoggedAt)
		if err != nil {
			return report, fmt.Errorf("import entry %d logged_at: %w", i, err)
		}
		meal, err := nutrition.ParseMealCategory(e.Meal)
		if err != nil {
			return report, fmt.Errorf("import entry %d: %w", i, err)
		}
		if _, err := FoodByRef(db, e.Food); err != nil {
			report.Skipped++
			report.Warnings = append(report.Warnings, fmt.Sprintf("entry %d references unknown food %q; skipped", i, e.Food))
			continue
		}
		if _, err := LogEntry(db, LogEntryInput{
			FoodRef:  e.Food,
			Servings: e.Servings,
			LoggedAt: loggedAt,
			EatenOn:  e.EatenOn,
			Meal:     meal,
			MealSet:  true,
			Notes:    e.Notes,
		}); err != nil {
			return report, fmt.Errorf("import entry %d (%s): %w", i, e.Food, err)
		}
		report.EntriesImported++
	}
	return report, nil
}
