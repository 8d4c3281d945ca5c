package preview

import (
	"testing"

	"github.com/amakaflow/fittool/pkg/compiler"
	"github.com/amakaflow/fittool/pkg/workout"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{45, "45s"},
		{60, "1 min"},
		{90, "1:30"},
		{300, "5 min"},
		{3900, "1:05:00"},
		{0, "0s"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{500, "500m"},
		{1500, "1.5km"},
		{2000, "2km"},
		{999, "999m"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func intp(v int) *int { return &v }

func TestBuild(t *testing.T) {
	c, err := compiler.New()
	if err != nil {
		t.Fatalf("compiler.New() error: %v", err)
	}
	spec := &workout.WorkoutSpec{
		Title: "Leg Day",
		Settings: workout.Settings{
			DefaultRestType: workout.RestTimed,
			DefaultRestSec:  intp(90),
		},
		Blocks: []workout.Block{{
			Exercises: []workout.Exercise{
				{Name: "Goblet Squat", Reps: workout.Reps{Raw: "10"}, Sets: 3},
			},
		}},
	}
	prog, err := c.Compile(spec, compiler.Options{})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	sum := Build(prog, compiler.ClassifySport(prog.Categories))

	if sum.Title != "Leg Day" {
		t.Errorf("Title = %q, want Leg Day", sum.Title)
	}
	if sum.Sport != "strength" || sum.SportDisplay != "Strength" {
		t.Errorf("Sport = %q/%q, want strength/Strength", sum.Sport, sum.SportDisplay)
	}
	if sum.ExerciseCount != 1 {
		t.Errorf("ExerciseCount = %d, want 1", sum.ExerciseCount)
	}
	if sum.TotalSets != 3 {
		t.Errorf("TotalSets = %d, want 3", sum.TotalSets)
	}
	if sum.RestCount != 1 {
		t.Errorf("RestCount = %d, want 1", sum.RestCount)
	}

	var squat *StepView
	for i := range sum.Steps {
		if sum.Steps[i].Name == "Goblet Squat" {
			squat = &sum.Steps[i]
		}
	}
	if squat == nil {
		t.Fatal("Goblet Squat missing from preview steps")
	}
	if squat.DurationDisplay != "10 reps" {
		t.Errorf("DurationDisplay = %q, want 10 reps", squat.DurationDisplay)
	}

	var rest *StepView
	for i := range sum.Steps {
		if sum.Steps[i].Type == "rest" {
			rest = &sum.Steps[i]
		}
	}
	if rest == nil {
		t.Fatal("rest step missing from preview")
	}
	if rest.DurationDisplay != "1:30" {
		t.Errorf("rest DurationDisplay = %q, want 1:30", rest.DurationDisplay)
	}
}

func TestBuildModalityFlags(t *testing.T) {
	c, err := compiler.New()
	if err != nil {
		t.Fatalf("compiler.New() error: %v", err)
	}

	tests := []struct {
		name        string
		exercises   []workout.Exercise
		hasRunning  bool
		hasCardio   bool
		hasStrength bool
	}{
		{
			name:        "strength only",
			exercises:   []workout.Exercise{{Name: "Goblet Squat", Reps: workout.Reps{Raw: "10"}}},
			hasStrength: true,
		},
		{
			name: "cardio machine plus strength",
			exercises: []workout.Exercise{
				{Name: "500m Row", Reps: workout.Reps{Raw: "500m"}},
				{Name: "Goblet Squat", Reps: workout.Reps{Raw: "10"}},
			},
			hasCardio:   true,
			hasStrength: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &workout.WorkoutSpec{
				Blocks: []workout.Block{{Exercises: tt.exercises}},
			}
			prog, err := c.Compile(spec, compiler.Options{})
			if err != nil {
				t.Fatalf("Compile() error: %v", err)
			}
			sum := Build(prog, compiler.ClassifySport(prog.Categories))
			if sum.HasRunning != tt.hasRunning || sum.HasCardio != tt.hasCardio || sum.HasStrength != tt.hasStrength {
				t.Errorf("flags = running %v / cardio %v / strength %v, want %v / %v / %v",
					sum.HasRunning, sum.HasCardio, sum.HasStrength,
					tt.hasRunning, tt.hasCardio, tt.hasStrength)
			}
		})
	}
}
