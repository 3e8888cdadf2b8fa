package usecases

import (
	"strconv"
	"strings"
)

// ValidateSearchInput reports whether input is NOT a usable 1-based
// selection among matchesLen entries: unparsable, negative, or past the end
// of the result list. Zero stays valid so callers can treat it as cancel.
func ValidateSearchInput(input string, matchesLen int) bool {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return true
	}
	return n < 0 || n-1 >= matchesLen
}
