package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/thelsien/Snaxlog-sub000/internal/catalog"
	"github.com/thelsien/Snaxlog-sub000/internal/model"
)

// catalogVersionKey marks the seeded catalog version in app_config so the
// reference data is inserted once at first launch and only topped up when
// the embedded catalog ships a newer version.
const catalogVersionKey = "catalog_version"

// SeedCatalog loads the embedded food catalog and predefined goals into the
// store. It is a no-op when the stored catalog version is current.
func SeedCatalog(db *sql.DB) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}

	stored, ok, err := GetConfig(db, catalogVersionKey)
	if err != nil {
		return err
	}
	if ok {
		version, err := strconv.Atoi(stored)
		if err == nil && version >= c.Version {
			return nil
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin catalog seed tx: %w", err)
	}
	for _, f := range c.Foods {
		if _, err := tx.Exec(`
INSERT OR IGNORE INTO foods(name, food_group, serving_desc, serving_g, calories, protein_g, carbs_g, fat_g)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, strings.TrimSpace(f.Name), normalizeName(f.Group), f.ServingDesc, f.ServingG, f.Calories, f.ProteinG, f.CarbsG, f.FatG); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed food %q: %w", f.Name, err)
		}
	}
	for _, g := range c.Goals {
		if _, err := tx.Exec(`
INSERT OR IGNORE INTO goals(name, calories, protein_g, carbs_g, fat_g, is_predefined, is_active)
VALUES(?, ?, ?, ?, ?, 1, 0)
`, strings.TrimSpace(g.Name), g.Calories, g.ProteinG, g.CarbsG, g.FatG); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed predefined goal %q: %w", g.Name, err)
		}
	}
	if _, err := tx.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, catalogVersionKey, strconv.Itoa(c.Version)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record catalog version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog seed tx: %w", err)
	}
	return nil
}

type ListFoodsFilter struct {
	Group string
	Query string
	Limit int
}

func ListFoods(db *sql.DB, f ListFoodsFilter) ([]model.Food, error) {
	query := `
SELECT id, name, food_group, serving_desc, serving_g, calories, protein_g, carbs_g, fat_g, created_at
FROM foods
WHERE 1=1`
	args := make([]any, 0)

	if strings.TrimSpace(f.Group) != "" {
		query += ` AND food_group = ?`
		args = append(args, normalizeName(f.Group))
	}
	if strings.TrimSpace(f.Query) != "" {
		query += ` AND name LIKE ? COLLATE NOCASE`
		args = append(args, "%"+strings.TrimSpace(f.Query)+"%")
	}
	query += ` ORDER BY name ASC`

	if f.Limit <= 0 {
		f.Limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, f.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	foods := make([]model.Food, 0)
	for rows.Next() {
		var fd model.Food
		if err := rows.Scan(&fd.ID, &fd.Name, &fd.FoodGroup, &fd.ServingDesc, &fd.ServingG, &fd.Calories, &fd.ProteinG, &fd.CarbsG, &fd.FatG, &fd.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, fd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return foods, nil
}

func FoodByID(db *sql.DB, id int64) (*model.Food, error) {
	if id <= 0 {
		return nil, fmt.Errorf("food id must be > 0")
	}
	var f model.Food
	err := db.QueryRow(`
SELECT id, name, food_group, serving_desc, serving_g, calories, protein_g, carbs_g, fat_g, created_at
FROM foods WHERE id = ?
`, id).Scan(&f.ID, &f.Name, &f.FoodGroup, &f.ServingDesc, &f.ServingG, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG, &f.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("food %d not found", id)
		}
		return nil, fmt.Errorf("load food %d: %w", id, err)
	}
	return &f, nil
}

// FoodByRef resolves a food by numeric id or by case-insensitive name.
func FoodByRef(db *sql.DB, ref string) (*model.Food, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("food is required")
	}
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return FoodByID(db, id)
	}
	var f model.Food
	err := db.QueryRow(`
SELECT id, name, food_group, serving_desc, serving_g, calories, protein_g, carbs_g, fat_g, created_at
FROM foods WHERE name = ? COLLATE NOCASE
`, ref).Scan(&f.ID, &f.Name, &f.FoodGroup, &f.ServingDesc, &f.ServingG, &f.Calories, &f.ProteinG, &f.CarbsG, &f.FatG, &f.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("food %q not found", ref)
		}
		return nil, fmt.Errorf("load food %q: %w", ref, err)
	}
	return &f, nil
}

func FoodGroups(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT food_group FROM foods ORDER BY food_group ASC`)
	if err != nil {
		return nil, fmt.Errorf("list food groups: %w", err)
	}
	defer rows.Close()

	groups := make([]string, 0)
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("scan food group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food groups: %w", err)
	}
	return groups, nil
}
