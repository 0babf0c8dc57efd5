package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice parses a price that may arrive as a display string
// ("£1,299.99", "MK 45,000", " 80 "). Everything except digits and the
// decimal point is stripped before parsing. Returns ok=false when the
// remainder still isn't a finite number.
func ParsePrice(raw string) (float64, bool) {
	cleaned := sanitizeNumeric(raw)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

// ParseStock coerces a stock figure to a non-negative integer.
// Absent or unparseable values count as 0.
func ParseStock(raw string) int {
	cleaned := sanitizeNumeric(raw)
	if cleaned == "" {
		return 0
	}

	// Stock may be sent as "3.0" by some backends; parse as float and floor.
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	stock := int(value)
	if stock < 0 {
		return 0
	}
	return stock
}

// sanitizeNumeric keeps digits and at most the characters needed for a
// decimal number, dropping currency symbols, separators, and whitespace.
func sanitizeNumeric(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
