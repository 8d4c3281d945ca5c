// Package preview renders a compiled workout program as human-readable
// step and summary views, for showing the user what the watch will run
// before anything is exported.
package preview

import (
	"fmt"
	"strconv"

	"github.com/amakaflow/fittool/pkg/compiler"
)

// StepView is one displayable step.
type StepView struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`

	// Type is "active", "rest", or "warmup".
	Type string `json:"type"`

	Sets            int    `json:"sets,omitempty"`
	Reps            string `json:"reps,omitempty"`
	DurationDisplay string `json:"duration_display"`
	Notes           string `json:"notes,omitempty"`
}

// Summary is the whole-workout preview.
type Summary struct {
	Title        string     `json:"title"`
	Sport        string     `json:"sport"`
	SportDisplay string     `json:"sport_display"`
	Color        string     `json:"color"`
	Steps        []StepView `json:"steps"`

	ExerciseCount int `json:"exercise_count"`
	RestCount     int `json:"rest_count"`
	TotalSets     int `json:"total_sets"`

	HasRunning  bool `json:"has_running"`
	HasCardio   bool `json:"has_cardio"`
	HasStrength bool `json:"has_strength"`

	Warnings []string `json:"warnings,omitempty"`
}

var sportDisplayNames = map[string]string{
	"running":  "Running",
	"cardio":   "Cardio",
	"strength": "Strength",
}

var sportColors = map[string]string{
	"running":  "#2196F3",
	"cardio":   "#9C27B0",
	"strength": "#FF5722",
}

// Build renders a compiled program. Repeat markers fold into the set
// counts of the steps they loop over rather than appearing as rows.
func Build(prog *compiler.Program, class compiler.Classification) *Summary {
	sum := &Summary{
		Title:        prog.Title,
		Sport:        class.Name,
		SportDisplay: sportDisplayNames[class.Name],
		Color:        sportColors[class.Name],
		Warnings:     class.Warnings,
	}
	if sum.SportDisplay == "" {
		sum.SportDisplay = "Workout"
	}
	sum.HasRunning, sum.HasCardio, sum.HasStrength = compiler.Modalities(prog.Categories)

	for _, s := range prog.Steps {
		switch v := s.(type) {
		case *compiler.ExerciseStep:
			view := StepView{
				Name:            v.DisplayName,
				Category:        v.CategoryName,
				Type:            string(v.Intensity),
				Sets:            v.Sets,
				Reps:            v.Reps,
				DurationDisplay: durationDisplay(v.Duration),
				Notes:           v.Notes,
			}
			sum.Steps = append(sum.Steps, view)
			sum.ExerciseCount++
			if v.Sets > 0 {
				sum.TotalSets += v.Sets
			} else {
				sum.TotalSets++
			}

		case *compiler.RestStep:
			sum.Steps = append(sum.Steps, StepView{
				Name:            "Rest",
				Type:            "rest",
				DurationDisplay: durationDisplay(v.Duration),
			})
			sum.RestCount++

		case *compiler.WarmupStep:
			sum.Steps = append(sum.Steps, StepView{
				Name:            v.DisplayName,
				Type:            "warmup",
				DurationDisplay: durationDisplay(v.Duration),
			})
		}
	}

	return sum
}

func durationDisplay(d compiler.Duration) string {
	switch d.Kind {
	case compiler.DurationTime:
		return FormatDuration(float64(d.Value) / 1000)
	case compiler.DurationDistance:
		return FormatDistance(float64(d.Value) / 100)
	case compiler.DurationReps:
		return fmt.Sprintf("%d reps", d.Value)
	default:
		return "Press Lap"
	}
}

// FormatDuration renders seconds as "45s", "1:30", "5 min", or "1:05:00".
func FormatDuration(seconds float64) string {
	total := int(seconds)
	switch {
	case total < 60:
		return fmt.Sprintf("%ds", total)
	case total < 3600:
		m, s := total/60, total%60
		if s == 0 {
			return fmt.Sprintf("%d min", m)
		}
		return fmt.Sprintf("%d:%02d", m, s)
	default:
		h := total / 3600
		m := (total % 3600) / 60
		s := total % 60
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
}

// FormatDistance renders meters as "500m", "1.5km", or "2km".
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", int(meters))
	}
	km := meters / 1000
	return strconv.FormatFloat(km, 'f', -1, 64) + "km"
}
