// Package compiler turns a workout document into the flat, ordered step
// program a FIT workout file carries: exercise, rest, warm-up, and repeat
// steps with device-ready durations.
package compiler

import "github.com/amakaflow/fittool/pkg/workout"

// DurationKind says how a step completes.
type DurationKind string

const (
	// DurationTime is a countdown; Value is milliseconds.
	DurationTime DurationKind = "time"
	// DurationDistance completes after a distance; Value is centimeters.
	DurationDistance DurationKind = "distance"
	// DurationReps completes after a rep count; Value is the count.
	DurationReps DurationKind = "reps"
	// DurationOpen completes on a lap button press; Value is 0.
	DurationOpen DurationKind = "lap_button"
)

// Duration is a step completion condition in device units.
type Duration struct {
	Kind  DurationKind
	Value uint32
}

// Intensity is the FIT step intensity.
type Intensity string

const (
	IntensityActive   Intensity = "active"
	IntensityRest     Intensity = "rest"
	IntensityWarmup   Intensity = "warmup"
	IntensityCooldown Intensity = "cooldown"
)

// Step is one compiled workout step. The concrete types are ExerciseStep,
// RestStep, WarmupStep, and RepeatStep; nothing else implements it.
type Step interface {
	step()
}

// ExerciseStep is a working or warm-up set of a single movement.
type ExerciseStep struct {
	DisplayName  string
	OriginalName string
	CategoryID   int
	CategoryName string
	Intensity    Intensity
	Duration     Duration

	// Reps is the raw prescription text ("12", "6-8", "500m"); empty when
	// the author gave none.
	Reps string
	Sets int

	// ExerciseNameID is the real FIT movement id when the dictionary knows
	// one, otherwise -1 and the exporter assigns a per-category id.
	ExerciseNameID int

	Notes     string
	WarmupSet bool
}

// RestStep is a recovery step, either timed or open-ended.
type RestStep struct {
	Duration Duration
	// Seconds mirrors Duration for timed rests; 0 for lap-button rests.
	Seconds int
}

// WarmupStep is a block- or workout-level warm-up activity.
type WarmupStep struct {
	DisplayName string
	Duration    Duration
}

// RepeatStep loops the device back to TargetIndex. Count is the TOTAL
// number of passes, not additional repeats; repeat_steps=3 on a device
// means 3 sets.
type RepeatStep struct {
	TargetIndex int
	Count       int
}

func (*ExerciseStep) step() {}
func (*RestStep) step()     {}
func (*WarmupStep) step()   {}
func (*RepeatStep) step()   {}

// warmupActivityNames maps warm-up activity keys to display names.
var warmupActivityNames = map[string]string{
	"stretching":  "Stretching",
	"jump_rope":   "Jump Rope",
	"air_bike":    "Air Bike",
	"treadmill":   "Treadmill",
	"stairmaster": "Stairmaster",
	"rowing":      "Rowing",
	"custom":      "Warm-Up",
}

func warmupDisplayName(activity string) string {
	if name, ok := warmupActivityNames[activity]; ok {
		return name
	}
	return "Warm-Up"
}

func newWarmupStep(durationSec int, activity string) *WarmupStep {
	step := &WarmupStep{DisplayName: warmupDisplayName(activity)}
	if durationSec > 0 {
		step.Duration = Duration{Kind: DurationTime, Value: uint32(durationSec) * 1000}
	} else {
		step.Duration = Duration{Kind: DurationOpen}
	}
	return step
}

func newRestStep(durationSec int, restType workout.RestType) *RestStep {
	if restType == workout.RestButton || durationSec <= 0 {
		return &RestStep{Duration: Duration{Kind: DurationOpen}}
	}
	return &RestStep{
		Duration: Duration{Kind: DurationTime, Value: uint32(durationSec) * 1000},
		Seconds:  durationSec,
	}
}
