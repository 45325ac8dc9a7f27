package utils

import (
	"math"
	"regexp"
	"strings"
)

func IsValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

func IsValidPassword(password string) bool {
	return len(password) >= 8
}

func SanitizeString(input string) string {
	return strings.TrimSpace(input)
}

// IsValidRating accepts finite values in [0, 10].
func IsValidRating(rating float64) bool {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return false
	}
	return rating >= 0 && rating <= 10
}

func IsValidCondition(condition string) bool {
	return condition == "new" || condition == "used"
}
