package utils

import (
	"math"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// Round2 rounds to 2 decimal places. Percentages in query results are
// reported this way everywhere.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
