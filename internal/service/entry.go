package service

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/thelsien/Snaxlog-sub000/internal/model"
	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
)

type LogEntryInput struct {
	FoodRef  string
	Servings float64
	// LoggedAt zero means "log right now"; only then does the meal-category
	// classifier supply a default.
	LoggedAt time.Time
	// EatenOn overrides the diary day; empty derives it from LoggedAt.
	EatenOn string
	Meal    nutrition.MealCategory
	// MealSet marks that the caller chose a meal explicitly (including
	// clearing it), which suppresses the time-of-day default.
	MealSet bool
	Notes   string
}

type UpdateEntryInput struct {
	ID       int64
	FoodRef  string
	Servings float64
	LoggedAt time.Time
	EatenOn  string
	Meal     nutrition.MealCategory
	MealSet  bool
	Notes    string
}

// entryTotals derives the denormalized nutrient totals of an entry from its
// food's per-serving values: calories round to the nearest integer, macro
// grams to one decimal place.
func entryTotals(food *model.Food, servings float64) (int, float64, float64, float64) {
	calories := int(math.Round(float64(food.Calories) * servings))
	protein := nutrition.Round1(food.ProteinG * servings)
	carbs := nutrition.Round1(food.CarbsG * servings)
	fat := nutrition.Round1(food.FatG * servings)
	return calories, protein, carbs, fat
}

func LogEntry(db *sql.DB, in LogEntryInput) (int64, error) {
	if err := validatePositiveFloat("servings", in.Servings); err != nil {
		return 0, err
	}
	food, err := FoodByRef(db, in.FoodRef)
	if err != nil {
		return 0, err
	}

	loggingNow := in.LoggedAt.IsZero() && strings.TrimSpace(in.EatenOn) == ""
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}
	if strings.TrimSpace(in.EatenOn) == "" {
		in.EatenOn = in.LoggedAt.Format(dateLayout)
	}
	eatenOn, err := normalizeDay(in.EatenOn)
	if err != nil {
		return 0, err
	}

	meal := in.Meal
	if !in.MealSet {
		meal = nutrition.MealNone
		// the classifier is a convenience default for "right now" only;
		// retroactive entries stay uncategorized
		if loggingNow {
			meal = nutrition.CategoryForTime(in.LoggedAt)
		}
	}

	calories, protein, carbs, fat := entryTotals(food, in.Servings)

	res, err := db.Exec(`
INSERT INTO diary_entries(food_id, servings, eaten_on, logged_at, meal, calories, protein_g, carbs_g, fat_g, notes)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, food.ID, in.Servings, eatenOn, in.LoggedAt.Format(time.RFC3339), string(meal), calories, protein, carbs, fat, strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("insert diary entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted entry id: %w", err)
	}
	return id, nil
}

func UpdateEntry(db *sql.DB, in UpdateEntryInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("entry id must be > 0")
	}
	if err := validatePositiveFloat("servings", in.Servings); err != nil {
		return err
	}
	if in.LoggedAt.IsZero() {
		return fmt.Errorf("logged time is required")
	}
	food, err := FoodByRef(db, in.FoodRef)
	if err != nil {
		return err
	}
	eatenOn, err := normalizeDay(in.EatenOn)
	if err != nil {
		return err
	}

	meal := in.Meal
	if !in.MealSet {
		current, err := EntryByID(db, in.ID)
		if err != nil {
			return err
		}
		meal = nutrition.MealCategory(current.Meal)
	}

	calories, protein, carbs, fat := entryTotals(food, in.Servings)

	res, err := db.Exec(`
UPDATE diary_entries
SET food_id = ?, servings = ?, eaten_on = ?, logged_at = ?, meal = ?, calories = ?, protein_g = ?, carbs_g = ?, fat_g = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, food.ID, in.Servings, eatenOn, in.LoggedAt.Format(time.RFC3339), string(meal), calories, protein, carbs, fat, strings.TrimSpace(in.Notes), in.ID)
	if err != nil {
		return fmt.Errorf("update entry %d: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for entry %d: %w", in.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d not found", in.ID)
	}
	return nil
}

// SetEntryMeal overrides or clears the meal category of an entry.
func SetEntryMeal(db *sql.DB, id int64, meal nutrition.MealCategory) error {
	if id <= 0 {
		return fmt.Errorf("entry id must be > 0")
	}
	res, err := db.Exec(`UPDATE diary_entries SET meal = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, string(meal), id)
	if err != nil {
		return fmt.Errorf("set meal for entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for entry %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d not found", id)
	}
	return nil
}

func DeleteEntry(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("entry id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM diary_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for entry %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d not found", id)
	}
	return nil
}

const entrySelect = `
SELECT e.id, e.food_id, f.name, e.servings, e.eaten_on, e.logged_at, e.meal, e.calories, e.protein_g, e.carbs_g, e.fat_g, e.notes, e.created_at, e.updated_at
FROM diary_entries e
JOIN foods f ON f.id = e.food_id`

func EntryByID(db *sql.DB, id int64) (*model.DiaryEntry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("entry id must be > 0")
	}
	row := db.QueryRow(entrySelect+` WHERE e.id = ?`, id)
	e, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("entry %d not found", id)
		}
		return nil, fmt.Errorf("load entry %d: %w", id, err)
	}
	return e, nil
}

// EntriesForDay returns the diary for one date in display order:
// uncategorized first, then breakfast, lunch, dinner, snacking, with entries
// inside each meal ordered by when they were logged.
func EntriesForDay(db *sql.DB, day string) ([]model.DiaryEntry, error) {
	day, err := normalizeDay(day)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(entrySelect+` WHERE e.eaten_on = ? ORDER BY e.logged_at ASC, e.id ASC`, day)
	if err != nil {
		return nil, fmt.Errorf("list entries for %s: %w", day, err)
	}
	defer rows.Close()

	entries := make([]model.DiaryEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return nutrition.SortRank(nutrition.MealCategory(entries[i].Meal)) <
			nutrition.SortRank(nutrition.MealCategory(entries[j].Meal))
	})
	return entries, nil
}

// EarliestEntryDay reports the first tracked diary day, used as the lower
// bound for date navigation. ok is false when the diary is empty.
func EarliestEntryDay(db *sql.DB) (string, bool, error) {
	var day sql.NullString
	if err := db.QueryRow(`SELECT MIN(eaten_on) FROM diary_entries`).Scan(&day); err != nil {
		return "", false, fmt.Errorf("find earliest entry day: %w", err)
	}
	if !day.Valid || day.String == "" {
		return "", false, nil
	}
	return day.String, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*model.DiaryEntry, error) {
	var e model.DiaryEntry
	var loggedAtRaw string
	if err := row.Scan(&e.ID, &e.FoodID, &e.FoodName, &e.Servings, &e.EatenOn, &loggedAtRaw, &e.Meal, &e.Calories, &e.ProteinG, &e.CarbsG, &e.FatG, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
	if err != nil {
		return nil, fmt.Errorf("parse logged_at for entry %d: %w", e.ID, err)
	}
	e.LoggedAt = loggedAt
	return &e, nil
}
