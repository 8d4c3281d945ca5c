package compiler

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/amakaflow/fittool/pkg/garmin"
)

var (
	reDistancePrefix = regexp.MustCompile(`(?i)^[\d.]+\s*(m|km|mi)\s+`)
	reRepToken       = regexp.MustCompile(`(?i)\s*\d*x\d+`)
)

// isUserConfirmedName reports whether a name reads like one a user picked
// from the device catalog: Title Case, no distance prefix ("500m Run"),
// no rep tokens ("Squat 3x10"). Such names are preserved verbatim instead
// of being replaced by the lookup's generic label.
func isUserConfirmedName(name string) bool {
	if len(name) < 2 {
		return false
	}
	if reDistancePrefix.MatchString(name) {
		return false
	}
	if reRepToken.MatchString(name) {
		return false
	}

	words := strings.Fields(name)
	if len(words) == 0 {
		return false
	}
	capitalized := 0
	for _, w := range words {
		if unicode.IsUpper([]rune(w)[0]) {
			capitalized++
		}
	}
	// Most words capitalized; small connectives like "to" may stay lower.
	return float64(capitalized) >= float64(len(words))*0.6
}

// displayNameFor picks the name the watch will show: the catalog name for
// exact matches, the input verbatim when it looks user-confirmed, and the
// lookup's display or category label otherwise.
func displayNameFor(name string, match garmin.Match) string {
	if match.Type == garmin.MatchExact {
		if match.DisplayName != "" {
			return match.DisplayName
		}
		return name
	}
	if isUserConfirmedName(name) {
		return name
	}
	if match.DisplayName != "" {
		return match.DisplayName
	}
	return match.CategoryName
}
