// Package encode converts loosely typed survey answers into the defined-domain
// floats the model artifacts were trained against. Every converter is total:
// malformed input is coerced to a default instead of surfacing an error, so a
// bad answer never blocks a prediction attempt.
package encode

import (
	"math"
	"strconv"
	"strings"
)

// Column is a single one-hot encoded field produced from a categorical answer.
type Column struct {
	Name  string
	Value float64
}

// Binary maps affirmative answers to 1.0. Only a string equal to "yes"
// (case-insensitive) counts as affirmative; any other value, including
// non-string input, maps to 0.0.
func Binary(value any) float64 {
	if s, ok := value.(string); ok && strings.EqualFold(s, "yes") {
		return 1
	}
	return 0
}

// Numeric converts value to a float64, returning fallback when the conversion
// is undefined (nil, non-numeric strings, incompatible types) or would produce
// a non-finite result. It never fails.
func Numeric(value any, fallback float64) float64 {
	out, ok := toFloat(value)
	if !ok || math.IsNaN(out) || math.IsInf(out, 0) {
		return fallback
	}
	return out
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// OneHot encodes a categorical answer as one column per level, named
// "{prefix}_{level}" (or just the level when prefix is empty), valued 1.0 on
// an exact match and 0.0 otherwise. Levels omitted from the list receive no
// column: the baseline category encodes as all zeros, matching the convention
// the artifacts were trained against.
func OneHot(value any, levels []string, prefix string) []Column {
	columns := make([]Column, len(levels))
	selected, _ := value.(string)
	for i, level := range levels {
		name := level
		if prefix != "" {
			name = prefix + "_" + level
		}
		columns[i] = Column{Name: name}
		if selected == level {
			columns[i].Value = 1
		}
	}
	return columns
}
