package utils

import (
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

// ParseOffset converts string to a non-negative offset
func ParseOffset(value string) int {
	if value == "" {
		return 0
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 0 {
		return 0
	}

	return result
}

// ClampDiscount limits a discount percentage to [0, max]
func ClampDiscount(discount, max float64) float64 {
	if discount < 0 {
		return 0
	}
	if discount > max {
		return max
	}
	return discount
}
