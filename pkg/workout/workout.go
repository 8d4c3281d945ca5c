// Package workout defines the author-facing workout document model: an
// ordered tree of blocks, supersets, and exercises with layered rest and
// warm-up settings. The model is read-only input for the step compiler.
package workout

// RestType selects how a rest step completes: a countdown timer or a lap
// button press ("wait for external acknowledgement").
type RestType string

const (
	RestTimed  RestType = "timed"
	RestButton RestType = "button"
)

// WorkoutSpec is the root workout document. It is never mutated after
// compilation starts.
type WorkoutSpec struct {
	Title    string   `json:"title" yaml:"title"`
	Settings Settings `json:"settings" yaml:"settings"`
	Blocks   []Block  `json:"blocks" yaml:"blocks"`
}

// Settings holds workout-level defaults for the rest hierarchy plus the
// optional workout-level warm-up.
type Settings struct {
	DefaultRestType RestType `json:"defaultRestType" yaml:"defaultRestType"`
	DefaultRestSec  *int     `json:"defaultRestSec" yaml:"defaultRestSec"`
	WorkoutWarmup   *Warmup  `json:"workoutWarmup" yaml:"workoutWarmup"`
}

// Warmup describes a warm-up activity. A zero DurationSec means the warm-up
// ends on a lap button press.
type Warmup struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Activity    string `json:"activity" yaml:"activity"`
	DurationSec int    `json:"durationSec" yaml:"durationSec"`
}

// RestOverride is a block-level rest override. It is only consulted when
// Enabled is set.
type RestOverride struct {
	Enabled  bool     `json:"enabled" yaml:"enabled"`
	RestType RestType `json:"restType" yaml:"restType"`
	RestSec  *int     `json:"restSec" yaml:"restSec"`
}

// Block is a named segment of a workout, optionally repeated for a round
// count parsed from the free-text Structure label ("3 rounds").
type Block struct {
	Name      string `json:"name" yaml:"name"`
	Structure string `json:"structure" yaml:"structure"`

	RestOverride *RestOverride `json:"restOverride" yaml:"restOverride"`
	RestType     RestType      `json:"rest_type" yaml:"rest_type"`

	// Legacy rest fields kept for older documents.
	RestBetweenSetsSec   *int `json:"rest_between_sets_sec" yaml:"rest_between_sets_sec"`
	RestBetweenSec       *int `json:"rest_between_sec" yaml:"rest_between_sec"`
	RestBetweenRoundsSec int  `json:"rest_between_rounds_sec" yaml:"rest_between_rounds_sec"`

	WarmupEnabled     bool   `json:"warmup_enabled" yaml:"warmup_enabled"`
	WarmupActivity    string `json:"warmup_activity" yaml:"warmup_activity"`
	WarmupDurationSec int    `json:"warmup_duration_sec" yaml:"warmup_duration_sec"`

	Supersets []Superset `json:"supersets" yaml:"supersets"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// Superset is a fixed sequence of exercises performed back-to-back with no
// rest between them. Rest settings absent here inherit from the block and
// workout defaults.
type Superset struct {
	Exercises      []Exercise `json:"exercises" yaml:"exercises"`
	RestBetweenSec *int       `json:"rest_between_sec" yaml:"rest_between_sec"`
	RestType       RestType   `json:"rest_type" yaml:"rest_type"`
}

// Exercise is a single movement prescription. Every field except Name is
// optional and has a documented compiler default.
type Exercise struct {
	Name        string   `json:"name" yaml:"name"`
	Reps        Reps     `json:"reps" yaml:"reps"`
	RepsRange   string   `json:"reps_range" yaml:"reps_range"`
	Sets        int      `json:"sets" yaml:"sets"`
	DurationSec int      `json:"duration_sec" yaml:"duration_sec"`
	DistanceM   float64  `json:"distance_m" yaml:"distance_m"`
	RestSec     *int     `json:"rest_sec" yaml:"rest_sec"`
	RestType    RestType `json:"rest_type" yaml:"rest_type"`
	WarmupSets  int      `json:"warmup_sets" yaml:"warmup_sets"`
	WarmupReps  int      `json:"warmup_reps" yaml:"warmup_reps"`
	Notes       string   `json:"notes" yaml:"notes"`
}
