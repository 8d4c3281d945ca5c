package fitfile

import (
	"fmt"

	"github.com/amakaflow/fittool/pkg/garmin"
)

// Validation is the result of a compatibility check on a decoded file.
// Issues make the file invalid; warnings are advisory.
type Validation struct {
	Valid    bool
	Issues   []string
	Warnings []string
}

// Validate checks a decoded workout file for known device compatibility
// problems: exercise categories beyond the valid range, and the generic
// fitness equipment sport pairing that most watches refuse to render
// custom workouts under.
func Validate(file *File) Validation {
	v := Validation{Valid: true}

	for _, rec := range file.Steps {
		if rec.IsRepeat {
			continue
		}
		if rec.CategoryID > garmin.MaxValidCategoryID {
			name := rec.Name
			if name == "" {
				name = "Unknown"
			}
			v.Valid = false
			v.Issues = append(v.Issues, fmt.Sprintf(
				"invalid exercise category %d in %q; some Garmin watches may reject this workout",
				rec.CategoryID, name))
		}
	}

	if file.Sport == "fitness_equipment" && file.SubSport == "generic" {
		v.Warnings = append(v.Warnings,
			"workout uses the generic fitness equipment sport; training/strength_training renders better on Garmin watches")
	}

	return v
}
