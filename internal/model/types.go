package model

import "time"

// Food is an immutable reference record from the seeded catalog. Users log
// diary entries against foods; they never edit the foods themselves.
type Food struct {
	ID          int64
	Name        string
	FoodGroup   string
	ServingDesc string
	ServingG    float64
	Calories    int
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	CreatedAt   time.Time
}

// DiaryEntry is one logged consumption event. Calories and macro grams are
// denormalized from the referenced food at write time: per-serving values
// multiplied by Servings, calories rounded to an int and grams to one decimal.
type DiaryEntry struct {
	ID        int64
	FoodID    int64
	FoodName  string
	Servings  float64
	EatenOn   string
	LoggedAt  time.Time
	Meal      string
	Calories  int
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Goal is a named nutrient target. Calories is required; the macro targets
// are optional. At most one goal is active at a time. Predefined goals are
// seeded with the catalog and cannot be edited or deleted.
type Goal struct {
	ID           int64
	Name         string
	Calories     int
	ProteinG     *float64
	CarbsG       *float64
	FatG         *float64
	IsPredefined bool
	IsActive     bool
	CreatedAt    time.Time
}
