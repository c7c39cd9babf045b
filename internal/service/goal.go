package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/thelsien/Snaxlog-sub000/internal/model"
	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
)

type CreateGoalInput struct {
	Name     string
	Calories int
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
	Activate bool
}

type UpdateGoalInput struct {
	Ref      string
	Name     string
	Calories int
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
}

func validateGoalTargets(calories int, protein, carbs, fat *float64) error {
	if calories <= 0 {
		return fmt.Errorf("calorie target must be > 0")
	}
	if err := validateOptionalTarget("protein", protein); err != nil {
		return err
	}
	if err := validateOptionalTarget("carbs", carbs); err != nil {
		return err
	}
	return validateOptionalTarget("fat", fat)
}

func CreateGoal(db *sql.DB, in CreateGoalInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("goal name is required")
	}
	if err := validateGoalTargets(in.Calories, in.ProteinG, in.CarbsG, in.FatG); err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO goals(name, calories, protein_g, carbs_g, fat_g, is_predefined, is_active)
VALUES(?, ?, ?, ?, ?, 0, 0)
`, in.Name, in.Calories, in.ProteinG, in.CarbsG, in.FatG)
	if err != nil {
		return 0, fmt.Errorf("insert goal %q: %w", in.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted goal id: %w", err)
	}
	if in.Activate {
		if err := ActivateGoal(db, strconv.FormatInt(id, 10)); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func UpdateGoal(db *sql.DB, in UpdateGoalInput) error {
	goal, err := GoalByRef(db, in.Ref)
	if err != nil {
		return err
	}
	if goal.IsPredefined {
		return fmt.Errorf("goal %q is predefined and cannot be edited", goal.Name)
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if err := validateGoalTargets(in.Calories, in.ProteinG, in.CarbsG, in.FatG); err != nil {
		return err
	}

	if _, err := db.Exec(`
UPDATE goals SET name = ?, calories = ?, protein_g = ?, carbs_g = ?, fat_g = ?
WHERE id = ?
`, in.Name, in.Calories, in.ProteinG, in.CarbsG, in.FatG, goal.ID); err != nil {
		return fmt.Errorf("update goal %q: %w", goal.Name, err)
	}
	return nil
}

// ActivateGoal makes the referenced goal the single active one. Deactivating
// every other goal and activating this one happens in one transaction, so
// callers never observe two active goals.
func ActivateGoal(db *sql.DB, ref string) error {
	goal, err := GoalByRef(db, ref)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin activate goal tx: %w", err)
	}
	if _, err := tx.Exec(`UPDATE goals SET is_active = 0 WHERE is_active = 1`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("deactivate goals: %w", err)
	}
	if _, err := tx.Exec(`UPDATE goals SET is_active = 1 WHERE id = ?`, goal.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("activate goal %q: %w", goal.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit activate goal tx: %w", err)
	}
	return nil
}

// DeactivateGoals clears the active flag, leaving no goal active.
func DeactivateGoals(db *sql.DB) error {
	if _, err := db.Exec(`UPDATE goals SET is_active = 0 WHERE is_active = 1`); err != nil {
		return fmt.Errorf("deactivate goals: %w", err)
	}
	return nil
}

func DeleteGoal(db *sql.DB, ref string) error {
	goal, err := GoalByRef(db, ref)
	if err != nil {
		return err
	}
	if goal.IsPredefined {
		return fmt.Errorf("goal %q is predefined and cannot be deleted", goal.Name)
	}
	if _, err := db.Exec(`DELETE FROM goals WHERE id = ?`, goal.ID); err != nil {
		return fmt.Errorf("delete goal %q: %w", goal.Name, err)
	}
	return nil
}

const goalSelect = `
SELECT id, name, calories, protein_g, carbs_g, fat_g, is_predefined, is_active, created_at
FROM goals`

// GoalByRef resolves a goal by numeric id or by case-insensitive name.
func GoalByRef(db *sql.DB, ref string) (*model.Goal, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("goal is required")
	}
	var row *sql.Row
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		row = db.QueryRow(goalSelect+` WHERE id = ?`, id)
	} else {
		row = db.QueryRow(goalSelect+` WHERE name = ? COLLATE NOCASE`, ref)
	}
	g, err := scanGoal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal %q not found", ref)
		}
		return nil, fmt.Errorf("load goal %q: %w", ref, err)
	}
	return g, nil
}

// ActiveGoal returns the currently active goal, or nil when none is active.
func ActiveGoal(db *sql.DB) (*model.Goal, error) {
	g, err := scanGoal(db.QueryRow(goalSelect + ` WHERE is_active = 1`))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load active goal: %w", err)
	}
	return g, nil
}

func ListGoals(db *sql.DB) ([]model.Goal, error) {
	rows, err := db.Query(goalSelect + ` ORDER BY is_active DESC, is_predefined DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

// Targets converts a stored goal to the calculator's target view.
func Targets(g *model.Goal) *nutrition.GoalTargets {
	if g == nil {
		return nil
	}
	return &nutrition.GoalTargets{
		Calories: g.Calories,
		ProteinG: g.ProteinG,
		CarbsG:   g.CarbsG,
		FatG:     g.FatG,
	}
}

func scanGoal(row rowScanner) (*model.Goal, error) {
	var g model.Goal
	var protein, carbs, fat sql.NullFloat64
	var predefined, active int
	if err := row.Scan(&g.ID, &g.Name, &g.Calories, &protein, &carbs, &fat, &predefined, &active, &g.CreatedAt); err != nil {
		return nil, err
	}
	if protein.Valid {
		v := protein.Float64
		g.ProteinG = &v
	}
	if carbs.Valid {
		v := carbs.Float64
		g.CarbsG = &v
	}
	if fat.Valid {
		v := fat.Float64
		g.FatG = &v
	}
	g.IsPredefined = predefined == 1
	g.IsActive = active == 1
	return &g, nil
}
