package compiler

import "github.com/amakaflow/fittool/pkg/garmin"

// StepRecord is one raw workout step as decoded from a FIT file. Absent
// numeric fields are -1.
type StepRecord struct {
	Index      int
	Name       string
	CategoryID int
	ExerciseID int

	DurationKind DurationKind
	Reps         int
	DurationSec  float64
	DistanceM    float64

	Intensity Intensity
	Notes     string

	IsRepeat    bool
	RepeatCount int
	TargetIndex int
}

// TitleKey addresses an exercise title record. ExerciseID -1 is the
// category-wide fallback entry.
type TitleKey struct {
	CategoryID int
	ExerciseID int
}

// DecompiledStep is a reconstructed workout step with the set structure
// folded back in.
type DecompiledStep struct {
	Name       string
	Category   string
	CategoryID int
	ExerciseID int

	// Type is "active", "rest", "warmup", or "cooldown".
	Type string

	DurationKind DurationKind
	Reps         int
	DurationSec  float64
	DistanceM    float64

	Sets  int
	Notes string
}

// Decompile reconstructs the per-exercise set structure from a flat step
// list. An [exercise, rest, repeat] run where the repeat loops back to the
// exercise collapses into one step with sets = repeat count + 1 (device
// repeat counts are total passes, and the collapse credits the pass the
// exercise step itself represents). Consumed markers disappear; markers
// that loop over larger spans are skipped, leaving their steps expanded.
func Decompile(records []StepRecord, titles map[TitleKey]string) []DecompiledStep {
	var out []DecompiledStep

	i := 0
	for i < len(records) {
		rec := records[i]
		if rec.IsRepeat {
			i++
			continue
		}

		step := DecompiledStep{
			Name:         rec.Name,
			CategoryID:   rec.CategoryID,
			ExerciseID:   rec.ExerciseID,
			DurationKind: rec.DurationKind,
			Reps:         rec.Reps,
			DurationSec:  rec.DurationSec,
			DistanceM:    rec.DistanceM,
			Notes:        rec.Notes,
			Sets:         1,
			Type:         stepType(rec.Intensity),
		}

		if step.Name == "" && rec.CategoryID >= 0 {
			step.Name = resolveTitle(titles, rec.CategoryID, rec.ExerciseID)
		}
		if rec.CategoryID >= 0 {
			step.Category = garmin.CategoryLabel(rec.CategoryID)
		}

		if i+2 < len(records) {
			rest := records[i+1]
			marker := records[i+2]
			if !rest.IsRepeat && rest.Intensity == IntensityRest &&
				marker.IsRepeat && marker.TargetIndex == rec.Index {
				step.Sets = marker.RepeatCount + 1
				i += 2 // consume the rest and the marker
			}
		}

		out = append(out, step)
		i++
	}

	return out
}

func resolveTitle(titles map[TitleKey]string, categoryID, exerciseID int) string {
	if name, ok := titles[TitleKey{CategoryID: categoryID, ExerciseID: exerciseID}]; ok {
		return name
	}
	if name, ok := titles[TitleKey{CategoryID: categoryID, ExerciseID: -1}]; ok {
		return name
	}
	return garmin.CategoryLabel(categoryID)
}

func stepType(intensity Intensity) string {
	switch intensity {
	case IntensityRest:
		return "rest"
	case IntensityWarmup:
		return "warmup"
	case IntensityCooldown:
		return "cooldown"
	default:
		return "active"
	}
}
