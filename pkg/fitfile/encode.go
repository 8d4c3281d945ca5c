// Package fitfile encodes compiled workout programs to FIT binaries and
// decodes FIT workout files back into raw step records.
package fitfile

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/google/uuid"
	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/proto"

	"github.com/amakaflow/fittool/pkg/compiler"
	fterrors "github.com/amakaflow/fittool/pkg/errors"
)

const (
	maxStepNameLen = 50
	maxNotesLen    = 255
)

// EncodeOptions control file-level metadata. The zero value is usable:
// creation time defaults to now and the serial number to a random one.
type EncodeOptions struct {
	TimeCreated  time.Time
	SerialNumber uint32
	Product      uint16
}

// titleEntry is one ExerciseTitle record in first-seen order.
type titleEntry struct {
	categoryID  int
	displayName string
	exerciseID  uint16
}

// exerciseIDTable assigns the exercise_name id each (category, display
// name) pair exports under. Real dictionary movement ids win; everything
// else gets a per-category counter from 0 so ids stay in the range
// watches accept.
type exerciseIDTable struct {
	assigned map[titleKey]uint16
	next     map[int]uint16
	order    []titleEntry
}

type titleKey struct {
	categoryID  int
	displayName string
}

func newExerciseIDTable() *exerciseIDTable {
	return &exerciseIDTable{
		assigned: make(map[titleKey]uint16),
		next:     make(map[int]uint16),
	}
}

func (t *exerciseIDTable) idFor(step *compiler.ExerciseStep) uint16 {
	key := titleKey{categoryID: step.CategoryID, displayName: step.DisplayName}
	if id, ok := t.assigned[key]; ok {
		return id
	}

	var id uint16
	if step.ExerciseNameID >= 0 {
		id = uint16(step.ExerciseNameID)
	} else {
		id = t.next[step.CategoryID]
		t.next[step.CategoryID]++
	}
	t.assigned[key] = id
	t.order = append(t.order, titleEntry{
		categoryID:  step.CategoryID,
		displayName: step.DisplayName,
		exerciseID:  id,
	})
	return id
}

// Encode serializes a compiled program as a FIT workout file.
func Encode(prog *compiler.Program, class compiler.Classification, opts EncodeOptions) ([]byte, error) {
	if prog == nil || len(prog.Steps) == 0 {
		return nil, fterrors.ErrEmptyWorkout
	}

	created := opts.TimeCreated
	if created.IsZero() {
		created = time.Now()
	}
	serial := opts.SerialNumber
	if serial == 0 {
		u := uuid.New()
		serial = binary.BigEndian.Uint32(u[:4])
	}

	fit := &proto.FIT{Messages: []proto.Message{}}

	fileID := mesgdef.NewFileId(nil).
		SetType(typedef.FileWorkout).
		SetManufacturer(typedef.ManufacturerDevelopment).
		SetProduct(opts.Product).
		SetTimeCreated(created).
		SetSerialNumber(serial)
	fit.Messages = append(fit.Messages, fileID.ToMesg(nil))

	numValid := 0
	for _, s := range prog.Steps {
		if _, ok := s.(*compiler.RepeatStep); !ok {
			numValid++
		}
	}

	workoutMsg := mesgdef.NewWorkout(nil).
		SetWktName(prog.Title).
		SetSport(sportToFIT(class.SportID)).
		SetSubSport(subSportToFIT(class.SubSportID)).
		SetNumValidSteps(uint16(numValid))
	fit.Messages = append(fit.Messages, workoutMsg.ToMesg(nil))

	// One ExerciseTitle per unique (category, display name) pair tells
	// the watch what to render for each exercise id.
	table := newExerciseIDTable()
	for _, s := range prog.Steps {
		if ex, ok := s.(*compiler.ExerciseStep); ok {
			table.idFor(ex)
		}
	}
	for i, entry := range table.order {
		title := mesgdef.NewExerciseTitle(nil).
			SetMessageIndex(typedef.MessageIndex(i)).
			SetExerciseCategory(typedef.ExerciseCategory(entry.categoryID)).
			SetExerciseName(entry.exerciseID).
			SetWktStepName([]string{truncate(entry.displayName, maxStepNameLen)})
		fit.Messages = append(fit.Messages, title.ToMesg(nil))
	}

	for i, s := range prog.Steps {
		ws := mesgdef.NewWorkoutStep(nil).
			SetMessageIndex(typedef.MessageIndex(i))

		switch v := s.(type) {
		case *compiler.ExerciseStep:
			ws.SetWktStepName(truncate(v.DisplayName, maxStepNameLen)).
				SetIntensity(intensityToFIT(v.Intensity)).
				SetDurationType(durationTypeToFIT(v.Duration.Kind)).
				SetTargetType(typedef.WktStepTargetOpen).
				SetExerciseCategory(typedef.ExerciseCategory(v.CategoryID)).
				SetExerciseName(table.idFor(v))
			if v.Duration.Kind != compiler.DurationOpen {
				ws.SetDurationValue(v.Duration.Value)
			}
			if v.Notes != "" {
				ws.SetNotes(truncate(v.Notes, maxNotesLen))
			}

		case *compiler.RestStep:
			ws.SetWktStepName("Rest").
				SetIntensity(typedef.IntensityRest).
				SetTargetType(typedef.WktStepTargetOpen)
			if v.Duration.Kind == compiler.DurationTime && v.Duration.Value > 0 {
				ws.SetDurationType(typedef.WktStepDurationTime).
					SetDurationValue(v.Duration.Value)
			} else {
				ws.SetDurationType(typedef.WktStepDurationOpen)
			}

		case *compiler.WarmupStep:
			ws.SetWktStepName(truncate(v.DisplayName, maxStepNameLen)).
				SetIntensity(typedef.IntensityWarmup).
				SetTargetType(typedef.WktStepTargetOpen)
			if v.Duration.Kind == compiler.DurationTime && v.Duration.Value > 0 {
				ws.SetDurationType(typedef.WktStepDurationTime).
					SetDurationValue(v.Duration.Value)
			} else {
				ws.SetDurationType(typedef.WktStepDurationOpen)
			}

		case *compiler.RepeatStep:
			ws.SetDurationType(typedef.WktStepDurationRepeatUntilStepsCmplt).
				SetDurationValue(uint32(v.TargetIndex)).
				SetTargetValue(uint32(v.Count))
		}

		fit.Messages = append(fit.Messages, ws.ToMesg(nil))
	}

	var buf bytes.Buffer
	enc := encoder.New(&buf)
	if err := enc.Encode(fit); err != nil {
		return nil, fterrors.ErrEncode.WithCause(err)
	}
	return buf.Bytes(), nil
}

// truncate cuts to n characters on a rune boundary; byte slicing could
// leave a broken UTF-8 sequence in a FIT string field.
func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

func sportToFIT(sportID int) typedef.Sport {
	if sportID == compiler.SportRunning {
		return typedef.SportRunning
	}
	return typedef.SportTraining
}

func subSportToFIT(subSportID int) typedef.SubSport {
	switch subSportID {
	case compiler.SubSportStrengthTraining:
		return typedef.SubSportStrengthTraining
	case compiler.SubSportCardioTraining:
		return typedef.SubSportCardioTraining
	default:
		return typedef.SubSportGeneric
	}
}

func intensityToFIT(in compiler.Intensity) typedef.Intensity {
	switch in {
	case compiler.IntensityRest:
		return typedef.IntensityRest
	case compiler.IntensityWarmup:
		return typedef.IntensityWarmup
	case compiler.IntensityCooldown:
		return typedef.IntensityCooldown
	default:
		return typedef.IntensityActive
	}
}

func durationTypeToFIT(kind compiler.DurationKind) typedef.WktStepDuration {
	switch kind {
	case compiler.DurationTime:
		return typedef.WktStepDurationTime
	case compiler.DurationDistance:
		return typedef.WktStepDurationDistance
	case compiler.DurationReps:
		return typedef.WktStepDurationReps
	default:
		return typedef.WktStepDurationOpen
	}
}
