package importer

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Accepted date layouts. The source app leaned on a permissive parser; this
// is a fixed allowlist so the same file always parses the same way.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02.01.2006",
}

func parseDateValue(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// parseDecimalValue accepts a comma as the decimal separator when no dot is
// present (comma-decimal locale exports). Thousands separators are rejected.
func parseDecimalValue(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("empty number")
	}
	if strings.Contains(trimmed, ",") && !strings.Contains(trimmed, ".") {
		trimmed = strings.Replace(trimmed, ",", ".", 1)
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	return value, nil
}

func parseIntValue(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("empty number")
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		// Sheet exports often render integers as decimals (e.g. "12319.0").
		asFloat, floatErr := parseDecimalValue(trimmed)
		if floatErr != nil || asFloat != float64(int64(asFloat)) {
			return 0, errors.New("not an integer")
		}
		return int64(asFloat), nil
	}
	return value, nil
}

func coercePositiveDecimal(raw string) (*float64, error) {
	value, err := parseDecimalValue(raw)
	if err != nil {
		return nil, err
	}
	if value <= 0 {
		return nil, errors.New("must be positive")
	}
	return &value, nil
}

func coerceNonNegativeInt(raw string) (*int64, error) {
	value, err := parseIntValue(raw)
	if err != nil {
		return nil, err
	}
	if value < 0 {
		return nil, errors.New("must not be negative")
	}
	return &value, nil
}

func coerceScore(raw string, min int, max int) (*int, error) {
	value, err := parseIntValue(raw)
	if err != nil {
		return nil, err
	}
	score := int(value)
	if score < min || score > max {
		return nil, errors.New("out of range " + strconv.Itoa(min) + ".." + strconv.Itoa(max))
	}
	return &score, nil
}
