package repositories

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Dataset date layouts, tried in order. Upload templates carry bare dates
// while database exports usually include the time of day.
var dateLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

// Strict integer field. Quantities feed depletion arithmetic, so a value
// that does not parse is a structural dataset error.
func parseIntField(value, column string, row int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("row %d: column %s: invalid integer %q", row, column, value)
	}
	return n, nil
}

// Lenient float field. Coordinates and storage rates degrade to NaN so the
// allocation engine sidelines the candidate instead of failing the run.
func parseFloatLenient(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func parseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func parseDateField(value, column string, row int) (time.Time, error) {
	t, err := parseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("row %d: column %s: %w", row, column, err)
	}
	return t, nil
}

// SQL NULL numerics degrade to NaN, matching unparsable CSV fields.
func nullableFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// NaN has no SQL representation; store it as NULL.
func nanToNull(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
