package compiler

// FIT sport and sub-sport ids used by workout files.
const (
	SportRunning  = 1
	SportTraining = 10

	SubSportGeneric          = 0
	SubSportStrengthTraining = 20
	SubSportCardioTraining   = 26
)

// Classification is the sport/sub-sport pair a workout should be exported
// under, with any compatibility warnings.
type Classification struct {
	SportID    int
	SubSportID int
	Name       string
	Warnings   []string
}

var (
	runningCategories       = map[int]struct{}{32: {}}
	cardioMachineCategories = map[int]struct{}{2: {}, 23: {}}
)

func intersects(a map[int]struct{}, b map[int]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

// Modalities reports which movement families a category set touches:
// running (32), cardio machines (2, 23), and everything else as strength.
func Modalities(categories map[int]struct{}) (hasRunning, hasCardio, hasStrength bool) {
	hasRunning = intersects(categories, runningCategories)
	hasCardio = intersects(categories, cardioMachineCategories)

	for id := range categories {
		if _, ok := runningCategories[id]; ok {
			continue
		}
		if _, ok := cardioMachineCategories[id]; ok {
			continue
		}
		hasStrength = true
		break
	}
	return hasRunning, hasCardio, hasStrength
}

// ClassifySport picks the sport type from the categories a compiled
// program uses. Cardio takes precedence over strength for mixed workouts
// (HYROX-style programs must export as cardio_training), and anything
// that is not pure running exports under training (10); the
// fitness_equipment sport does not render custom workouts on most
// watches.
func ClassifySport(categories map[int]struct{}) Classification {
	hasRunning, hasCardio, hasStrength := Modalities(categories)

	switch {
	case hasRunning && !hasStrength && !hasCardio:
		return Classification{SportID: SportRunning, SubSportID: SubSportGeneric, Name: "running"}
	case hasRunning || hasCardio:
		return Classification{SportID: SportTraining, SubSportID: SubSportCardioTraining, Name: "cardio"}
	default:
		return Classification{SportID: SportTraining, SubSportID: SubSportStrengthTraining, Name: "strength"}
	}
}

// SportByName resolves a forced sport override ("strength", "cardio",
// "running"). The second return is false for unknown names.
func SportByName(name string) (Classification, bool) {
	switch name {
	case "strength":
		return Classification{SportID: SportTraining, SubSportID: SubSportStrengthTraining, Name: "strength"}, true
	case "cardio":
		return Classification{SportID: SportTraining, SubSportID: SubSportCardioTraining, Name: "cardio"}, true
	case "running":
		return Classification{SportID: SportRunning, SubSportID: SubSportGeneric, Name: "running"}, true
	default:
		return Classification{}, false
	}
}
