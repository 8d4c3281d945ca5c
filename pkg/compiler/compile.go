package compiler

import (
	"strconv"

	fterrors "github.com/amakaflow/fittool/pkg/errors"
	"github.com/amakaflow/fittool/pkg/garmin"
	"github.com/amakaflow/fittool/pkg/workout"
)

// maxTitleLen is the FIT workout name field limit.
const maxTitleLen = 50

// Options control a single compilation.
type Options struct {
	// UseLapButton makes every working set open-ended, for users who
	// prefer pressing lap over counting reps.
	UseLapButton bool
}

// Program is a compiled workout: the flat step list plus the category set
// the sport classifier and exporter need.
type Program struct {
	Title      string
	Steps      []Step
	Categories map[int]struct{}
}

// ExerciseCount returns the number of exercise steps, warm-up sets
// included.
func (p *Program) ExerciseCount() int {
	n := 0
	for _, s := range p.Steps {
		if _, ok := s.(*ExerciseStep); ok {
			n++
		}
	}
	return n
}

// Compiler compiles workout documents into step programs.
type Compiler struct {
	lookup *garmin.Lookup
}

// New builds a Compiler backed by the bundled exercise dictionary.
func New() (*Compiler, error) {
	lookup, err := garmin.NewLookup()
	if err != nil {
		return nil, err
	}
	return &Compiler{lookup: lookup}, nil
}

// annotated is an exercise with its position inside the block flattened
// out, so the emission loop below stays a single pass.
type annotated struct {
	ex *workout.Exercise

	inSuperset       bool
	firstInSuperset  bool
	lastInSuperset   bool
	supersetRest     *int
	supersetRestType workout.RestType
	supersetRounds   int

	// lastInBlockTail marks the final superset (when the block has no
	// standalone exercises) or the final standalone exercise; used for
	// trailing rest suppression at the end of the program.
	lastInBlockTail bool
}

// Compile walks the document depth-first and emits the device step
// sequence. It fails only when the result would contain no exercises.
func (c *Compiler) Compile(spec *workout.WorkoutSpec, opts Options) (*Program, error) {
	if spec == nil {
		return nil, fterrors.ErrInvalidInput.WithMessage("nil workout document")
	}

	title := spec.Title
	if title == "" {
		title = "Workout"
	}
	// Truncate on a rune boundary so multi-byte titles stay valid UTF-8.
	if r := []rune(title); len(r) > maxTitleLen {
		title = string(r[:maxTitleLen])
	}

	defaultRestType := spec.Settings.DefaultRestType
	if defaultRestType == "" {
		defaultRestType = workout.RestButton
	}
	defaultRestSec := spec.Settings.DefaultRestSec

	var steps []Step
	categories := make(map[int]struct{})

	// Workout-level warm-up comes before everything. When neither it nor
	// the first block configures one, a lap-button warm-up is implied.
	if ww := spec.Settings.WorkoutWarmup; ww != nil && ww.Enabled {
		steps = append(steps, newWarmupStep(ww.DurationSec, ww.Activity))
	} else if len(spec.Blocks) == 0 || !spec.Blocks[0].WarmupEnabled {
		steps = append(steps, newWarmupStep(0, ""))
	}

	numBlocks := len(spec.Blocks)
	for blockIdx := range spec.Blocks {
		block := &spec.Blocks[blockIdx]
		isLastBlock := blockIdx == numBlocks-1

		if block.WarmupEnabled {
			steps = append(steps, newWarmupStep(block.WarmupDurationSec, block.WarmupActivity))
		}

		rounds := parseStructure(block.Structure)
		br := resolveBlockRest(block, defaultRestType, defaultRestSec)

		all := flattenBlock(block, br, rounds)

		supersetStart := -1
		for idx := range all {
			item := &all[idx]
			ex := item.ex

			name := ex.Name
			if name == "" {
				name = "Exercise"
			}
			sets := ex.Sets
			if sets == 0 {
				sets = rounds
			}

			if item.inSuperset && item.firstInSuperset {
				supersetStart = len(steps)
			}

			match := c.lookup.Find(name)
			categoryID := garmin.ValidateCategoryID(match.CategoryID)
			categories[categoryID] = struct{}{}

			displayName := displayNameFor(name, match)
			duration := resolveDuration(ex, opts.UseLapButton)
			exRestType, exRestSec := resolveExerciseRest(ex, br)

			// Warm-up sets precede the working sets as their own
			// exercise/rest/repeat sub-sequence.
			if ex.WarmupSets > 0 && ex.WarmupReps > 0 {
				warmupStart := len(steps)
				steps = append(steps, &ExerciseStep{
					DisplayName:    displayName + " (Warm-Up)",
					OriginalName:   name,
					CategoryID:     categoryID,
					CategoryName:   match.CategoryName,
					Intensity:      IntensityWarmup,
					Duration:       Duration{Kind: DurationReps, Value: uint32(ex.WarmupReps)},
					Reps:           strconv.Itoa(ex.WarmupReps),
					Sets:           ex.WarmupSets,
					ExerciseNameID: match.ExerciseNameID,
					WarmupSet:      true,
				})
				if ex.WarmupSets > 1 {
					switch {
					case exRestType == workout.RestButton:
						steps = append(steps, newRestStep(0, workout.RestButton))
					case exRestSec != nil && *exRestSec > 0:
						steps = append(steps, newRestStep(*exRestSec, workout.RestTimed))
					case br.betweenSets > 0:
						steps = append(steps, newRestStep(br.betweenSets, br.restType))
					}
					steps = append(steps, &RepeatStep{TargetIndex: warmupStart, Count: ex.WarmupSets})
				}
				// Recover before the working sets.
				if exRestSec != nil && *exRestSec > 0 {
					steps = append(steps, newRestStep(*exRestSec, exRestType))
				} else if br.betweenSets > 0 {
					steps = append(steps, newRestStep(br.betweenSets, br.restType))
				}
			}

			start := len(steps)
			working := &ExerciseStep{
				DisplayName:    displayName,
				OriginalName:   name,
				CategoryID:     categoryID,
				CategoryName:   match.CategoryName,
				Intensity:      IntensityActive,
				Duration:       duration,
				Reps:           ex.Reps.Raw,
				Sets:           sets,
				ExerciseNameID: match.ExerciseNameID,
				Notes:          ex.Notes,
			}
			steps = append(steps, working)

			isLastExercise := idx == len(all)-1

			if item.inSuperset {
				// Superset exercises run back-to-back; rest and repeat
				// only follow the last one.
				if !item.lastInSuperset {
					continue
				}

				hasRest := (item.supersetRest != nil && *item.supersetRest > 0) ||
					item.supersetRestType == workout.RestButton
				if hasRest {
					lastInWorkout := isLastBlock && item.lastInBlockTail
					// Repeating supersets keep the rest inside the loop;
					// single-round ones drop it only at the very end of
					// the program.
					if item.supersetRounds > 1 || !lastInWorkout {
						sec := 0
						if item.supersetRest != nil {
							sec = *item.supersetRest
						}
						steps = append(steps, newRestStep(sec, item.supersetRestType))
					}
				}
				if item.supersetRounds > 1 && supersetStart >= 0 {
					steps = append(steps, &RepeatStep{TargetIndex: supersetStart, Count: item.supersetRounds})
				}
				supersetStart = -1
				continue
			}

			// Standalone exercise: its own rest/repeat cycle.
			if sets > 1 {
				switch {
				case exRestType == workout.RestButton:
					steps = append(steps, newRestStep(0, workout.RestButton))
				case exRestSec != nil && *exRestSec > 0:
					steps = append(steps, newRestStep(*exRestSec, workout.RestTimed))
				case br.betweenSets > 0:
					steps = append(steps, newRestStep(br.betweenSets, br.restType))
				}
				steps = append(steps, &RepeatStep{TargetIndex: start, Count: sets})
				continue
			}

			hasRest := (exRestSec != nil && *exRestSec > 0) || exRestType == workout.RestButton
			if hasRest && !(isLastBlock && isLastExercise) {
				sec := 0
				if exRestSec != nil {
					sec = *exRestSec
				}
				steps = append(steps, newRestStep(sec, exRestType))
			}
		}

		if block.RestBetweenRoundsSec > 0 && !isLastBlock {
			steps = append(steps, newRestStep(block.RestBetweenRoundsSec, br.restType))
		}
	}

	prog := &Program{Title: title, Steps: steps, Categories: categories}
	if prog.ExerciseCount() == 0 {
		return nil, fterrors.ErrEmptyWorkout
	}
	return prog, nil
}

// flattenBlock lines up superset exercises followed by standalone ones,
// each annotated with the context the emission loop needs.
func flattenBlock(block *workout.Block, br blockRest, rounds int) []annotated {
	var all []annotated

	for si := range block.Supersets {
		ss := &block.Supersets[si]

		ssRest := ss.RestBetweenSec
		if ssRest == nil {
			ssRest = br.restSec
		}
		ssRestType := ss.RestType
		if ssRestType == "" {
			ssRestType = br.restType
		}
		lastSuperset := si == len(block.Supersets)-1 && len(block.Exercises) == 0

		for ei := range ss.Exercises {
			all = append(all, annotated{
				ex:               &ss.Exercises[ei],
				inSuperset:       true,
				firstInSuperset:  ei == 0,
				lastInSuperset:   ei == len(ss.Exercises)-1,
				supersetRest:     ssRest,
				supersetRestType: ssRestType,
				supersetRounds:   rounds,
				lastInBlockTail:  lastSuperset,
			})
		}
	}

	for ei := range block.Exercises {
		all = append(all, annotated{
			ex:              &block.Exercises[ei],
			lastInBlockTail: ei == len(block.Exercises)-1,
		})
	}

	return all
}
