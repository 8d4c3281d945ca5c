package compiler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/amakaflow/fittool/pkg/workout"
)

var (
	reRoundCount = regexp.MustCompile(`(\d+)`)
	reRepsKm     = regexp.MustCompile(`^([\d.]+)\s*km$`)
	reRepsM      = regexp.MustCompile(`^([\d.]+)\s*m$`)
)

// parseStructure extracts a round count from a free-text structure label
// like "3 rounds" or "4 Rounds for time". No number means one round.
func parseStructure(structure string) int {
	m := reRoundCount.FindStringSubmatch(structure)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}

// parseRepsDistance reads a distance out of a rep prescription like "500m"
// or "1.5km". Returns meters, or 0 when the text is not a distance.
func parseRepsDistance(raw string) float64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	if m := reRepsKm.FindStringSubmatch(s); m != nil {
		km, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return km * 1000
		}
	}
	if m := reRepsM.FindStringSubmatch(s); m != nil {
		meters, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return meters
		}
	}
	return 0
}

// parseRepsLow reads the lower bound of a rep prescription: "6-8" gives 6,
// "12" gives 12. Unparseable text gives the default of 10.
func parseRepsLow(raw string) int {
	first, _, _ := strings.Cut(raw, "-")
	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 10
	}
	return n
}

// parseRangeUpper reads the upper bound of a rep range: "6-8" gives 8.
// Unparseable text gives the default of 10.
func parseRangeUpper(repsRange string) int {
	fields := strings.Fields(strings.ReplaceAll(repsRange, "-", " "))
	if len(fields) == 0 {
		return 10
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 10
	}
	return n
}

// resolveDuration picks the completion condition for a working set, in
// strict priority order: explicit distance, distance written into the rep
// text, timed duration, rep count (then rep range), and finally the lap
// button for prescriptions with nothing countable (e.g. "Indoor Track
// Run").
func resolveDuration(ex *workout.Exercise, useLapButton bool) Duration {
	if useLapButton {
		return Duration{Kind: DurationOpen}
	}

	meters := 0.0
	if ex.DistanceM > 0 {
		meters = ex.DistanceM
	} else if d := parseRepsDistance(ex.Reps.Raw); d > 0 {
		meters = d
	}
	if meters > 0 {
		return Duration{Kind: DurationDistance, Value: uint32(meters * 100)}
	}

	if ex.DurationSec > 0 {
		return Duration{Kind: DurationTime, Value: uint32(ex.DurationSec) * 1000}
	}

	if !ex.Reps.IsZero() {
		return Duration{Kind: DurationReps, Value: uint32(parseRepsLow(ex.Reps.Raw))}
	}
	if ex.RepsRange != "" {
		return Duration{Kind: DurationReps, Value: uint32(parseRangeUpper(ex.RepsRange))}
	}

	return Duration{Kind: DurationOpen}
}
