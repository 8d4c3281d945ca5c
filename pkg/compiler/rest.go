package compiler

import "github.com/amakaflow/fittool/pkg/workout"

// defaultRestBetweenSets is the fallback rest when no level of the
// hierarchy specifies one for timed set rest.
const defaultRestBetweenSets = 30

// blockRest is the rest configuration in effect for one block after the
// workout defaults and the block override have been folded together.
type blockRest struct {
	restType    workout.RestType
	restSec     *int
	betweenSets int
}

// resolveBlockRest folds the rest hierarchy down to block level: an
// enabled block override wins, otherwise the block's legacy rest type and
// the workout defaults apply.
func resolveBlockRest(block *workout.Block, defaultType workout.RestType, defaultSec *int) blockRest {
	var rt workout.RestType
	var sec *int

	if ro := block.RestOverride; ro != nil && ro.Enabled {
		rt = ro.RestType
		if rt == "" {
			rt = defaultType
		}
		sec = ro.RestSec
		if sec == nil {
			sec = defaultSec
		}
	} else {
		rt = block.RestType
		if rt == "" {
			rt = defaultType
		}
		sec = defaultSec
	}

	between := defaultRestBetweenSets
	if block.RestBetweenSetsSec != nil && *block.RestBetweenSetsSec != 0 {
		between = *block.RestBetweenSetsSec
	} else if block.RestBetweenSec != nil && *block.RestBetweenSec != 0 {
		between = *block.RestBetweenSec
	}

	return blockRest{restType: rt, restSec: sec, betweenSets: between}
}

// resolveExerciseRest applies the exercise level of the hierarchy on top
// of the block's resolved rest.
func resolveExerciseRest(ex *workout.Exercise, br blockRest) (workout.RestType, *int) {
	rt := ex.RestType
	if rt == "" {
		rt = br.restType
	}
	sec := ex.RestSec
	if sec == nil {
		sec = br.restSec
	}
	return rt, sec
}
