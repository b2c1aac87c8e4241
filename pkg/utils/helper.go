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

// Round2 rounds half away from zero to two decimal places.
// Converted booking amounts are rounded once here so the stored
// value and the gateway minor-unit amount never disagree.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// ToMinorUnits converts a major-currency amount to integer cents.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
