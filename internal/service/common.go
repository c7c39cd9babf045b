package service

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func validatePositiveFloat(name string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func validateOptionalTarget(name string, value *float64) error {
	if value != nil && *value <= 0 {
		return fmt.Errorf("%s target must be > 0 when set", name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// normalizeDay validates a YYYY-MM-DD date, defaulting to today when empty.
func normalizeDay(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.ParseInLocation(dateLayout, value, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}
