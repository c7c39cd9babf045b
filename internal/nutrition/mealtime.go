package nutrition

import (
	"fmt"
	"strings"
	"time"
)

// MealCategory tags a diary entry with the meal it belongs to. The empty
// value means the entry is uncategorized.
type MealCategory string

const (
	MealNone      MealCategory = ""
	MealBreakfast MealCategory = "breakfast"
	MealLunch     MealCategory = "lunch"
	MealDinner    MealCategory = "dinner"
	MealSnacking  MealCategory = "snacking"
)

// CategoryForHour buckets an hour of day (0-23) into a meal category:
// breakfast 04-10, lunch 11-14, dinner 15-20, and snacking for everything
// else. The classifier only supplies a default when logging an entry for
// right now; it is never enforced, and retroactive entries get no default.
func CategoryForHour(hour int) MealCategory {
	switch {
	case hour >= 4 && hour <= 10:
		return MealBreakfast
	case hour >= 11 && hour <= 14:
		return MealLunch
	case hour >= 15 && hour <= 20:
		return MealDinner
	default:
		return MealSnacking
	}
}

// CategoryForTime buckets a timestamp via CategoryForHour.
func CategoryForTime(t time.Time) MealCategory {
	return CategoryForHour(t.Hour())
}

// SortRank returns the fixed display order of meal categories: uncategorized
// entries first, then breakfast, lunch, dinner, snacking. This is a display
// convention, not a time ordering.
func SortRank(c MealCategory) int {
	switch c {
	case MealBreakfast:
		return 1
	case MealLunch:
		return 2
	case MealDinner:
		return 3
	case MealSnacking:
		return 4
	default:
		return 0
	}
}

// Display returns the human-readable label for a meal category.
func (c MealCategory) Display() string {
	if c == MealNone {
		return "Uncategorized"
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// ParseMealCategory parses a user-supplied meal name. "none" and the empty
// string both yield MealNone.
func ParseMealCategory(value string) (MealCategory, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return MealNone, nil
	case "breakfast":
		return MealBreakfast, nil
	case "lunch":
		return MealLunch, nil
	case "dinner":
		return MealDinner, nil
	case "snacking", "snack", "snacks":
		return MealSnacking, nil
	default:
		return MealNone, fmt.Errorf("invalid meal category %q (use breakfast, lunch, dinner, snacking, or none)", value)
	}
}
