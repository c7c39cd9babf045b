package service_test

import (
	"testing"

	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

func TestSeedCatalogIdempotent(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	// newTestDB already seeded once; a second pass must not duplicate
	if err := service.SeedCatalog(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	foods, err := service.ListFoods(db, service.ListFoodsFilter{Limit: 1000})
	if err != nil {
		t.Fatalf("list foods: %v", err)
	}
	if len(foods) == 0 {
		t.Fatalf("expected seeded foods")
	}
	seen := map[string]bool{}
	for _, f := range foods {
		if seen[f.Name] {
			t.Fatalf("food %q duplicated by reseeding", f.Name)
		}
		seen[f.Name] = true
	}

	goals, err := service.ListGoals(db)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	predefined := 0
	for _, g := range goals {
		if g.IsPredefined {
			predefined++
		}
		if g.IsActive {
			t.Fatalf("seeding must not activate any goal, %q is active", g.Name)
		}
	}
	if predefined == 0 {
		t.Fatalf("expected predefined goals to be seeded")
	}
}

func TestFoodByRefByIDAndName(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	byName, err := service.FoodByRef(db, "chicken breast")
	if err != nil {
		t.Fatalf("food by name: %v", err)
	}
	if byName.ProteinG != 31.0 {
		t.Fatalf("expected chicken breast protein 31.0, got %v", byName.ProteinG)
	}

	byID, err := service.FoodByRef(db, "1")
	if err != nil {
		t.Fatalf("food by id: %v", err)
	}
	if byID.ID != 1 {
		t.Fatalf("expected food id 1, got %d", byID.ID)
	}

	if _, err := service.FoodByRef(db, "no such food"); err == nil {
		t.Fatalf("expected unknown food to error")
	}
}

func TestListFoodsFilters(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	fruits, err := service.ListFoods(db, service.ListFoodsFilter{Group: "fruits"})
	if err != nil {
		t.Fatalf("list fruits: %v", err)
	}
	if len(fruits) == 0 {
		t.Fatalf("expected fruits in the seeded catalog")
	}
	for _, f := range fruits {
		if f.FoodGroup != "fruits" {
			t.Fatalf("expected only fruits, got %q in group %q", f.Name, f.FoodGroup)
		}
	}

	matches, err := service.ListFoods(db, service.ListFoodsFilter{Query: "chick"})
	if err != nil {
		t.Fatalf("search foods: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Chicken breast" {
		t.Fatalf("expected search to find chicken breast, got %+v", matches)
	}

	groups, err := service.FoodGroups(db)
	if err != nil {
		t.Fatalf("food groups: %v", err)
	}
	if len(groups) < 3 {
		t.Fatalf("expected several food groups, got %v", groups)
	}
}
