package fitfile

import (
	"io"
	"time"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/basetype"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"

	"github.com/amakaflow/fittool/pkg/compiler"
	fterrors "github.com/amakaflow/fittool/pkg/errors"
)

// File is the decoded content of a FIT workout file.
type File struct {
	Name     string
	Sport    string
	SubSport string

	// Manufacturer and Source identify the producing device. Source is the
	// Garmin product name when the manufacturer is Garmin.
	Manufacturer string
	Source       string
	Created      time.Time

	// Titles maps (category, exercise id) to display names; an entry with
	// ExerciseID -1 is the category-wide fallback.
	Titles map[compiler.TitleKey]string

	Steps []compiler.StepRecord
}

// Decode reads a FIT workout file. Files whose file_id names a different
// file type, and files with no workout content at all, fail with
// ErrNotWorkoutFile; malformed input fails with ErrDecode.
func Decode(r io.Reader) (*File, error) {
	dec := decoder.New(r)
	fit, err := dec.Decode()
	if err != nil {
		return nil, fterrors.ErrDecode.WithCause(err)
	}

	file := &File{Titles: make(map[compiler.TitleKey]string)}
	sawFileID := false
	sawWorkout := false

	for i := range fit.Messages {
		msg := &fit.Messages[i]
		switch msg.Num {
		case typedef.MesgNumFileId:
			sawFileID = true
			fid := mesgdef.NewFileId(msg)
			if fid.Type != typedef.FileWorkout {
				return nil, fterrors.ErrNotWorkoutFile
			}
			file.Manufacturer = fid.Manufacturer.String()
			file.Created = fid.TimeCreated
			if fid.Manufacturer == typedef.ManufacturerGarmin {
				file.Source = typedef.GarminProduct(fid.Product).String()
			}

		case typedef.MesgNumWorkout:
			sawWorkout = true
			wkt := mesgdef.NewWorkout(msg)
			file.Name = wkt.WktName
			file.Sport = wkt.Sport.String()
			file.SubSport = wkt.SubSport.String()

		case typedef.MesgNumExerciseTitle:
			title := mesgdef.NewExerciseTitle(msg)
			if len(title.WktStepName) == 0 || title.ExerciseCategory == typedef.ExerciseCategoryInvalid {
				continue
			}
			name := title.WktStepName[0]
			cat := int(title.ExerciseCategory)
			if title.ExerciseName != basetype.Uint16Invalid {
				file.Titles[compiler.TitleKey{CategoryID: cat, ExerciseID: int(title.ExerciseName)}] = name
			}
			// Category-wide fallback: first title for the category wins.
			wide := compiler.TitleKey{CategoryID: cat, ExerciseID: -1}
			if _, ok := file.Titles[wide]; !ok {
				file.Titles[wide] = name
			}

		case typedef.MesgNumWorkoutStep:
			step := mesgdef.NewWorkoutStep(msg)
			file.Steps = append(file.Steps, stepRecordFromMesg(step))
		}
	}

	if !sawFileID && !sawWorkout && len(file.Steps) == 0 {
		return nil, fterrors.ErrNotWorkoutFile
	}
	return file, nil
}

func stepRecordFromMesg(step *mesgdef.WorkoutStep) compiler.StepRecord {
	rec := compiler.StepRecord{
		Index:      int(step.MessageIndex),
		Name:       step.WktStepName,
		CategoryID: -1,
		ExerciseID: -1,
		Reps:       -1,
		Notes:      step.Notes,
	}

	if step.ExerciseCategory != typedef.ExerciseCategoryInvalid {
		rec.CategoryID = int(step.ExerciseCategory)
	}
	if step.ExerciseName != basetype.Uint16Invalid {
		rec.ExerciseID = int(step.ExerciseName)
	}

	value := step.DurationValue
	hasValue := value != basetype.Uint32Invalid

	switch step.DurationType {
	case typedef.WktStepDurationTime:
		rec.DurationKind = compiler.DurationTime
		if hasValue {
			rec.DurationSec = float64(value) / 1000
		}
	case typedef.WktStepDurationDistance:
		rec.DurationKind = compiler.DurationDistance
		if hasValue {
			rec.DistanceM = float64(value) / 100
		}
	case typedef.WktStepDurationReps:
		rec.DurationKind = compiler.DurationReps
		if hasValue {
			rec.Reps = int(value)
		}
	case typedef.WktStepDurationRepeatUntilStepsCmplt:
		rec.IsRepeat = true
		if hasValue {
			rec.TargetIndex = int(value)
		}
		if step.TargetValue != basetype.Uint32Invalid {
			rec.RepeatCount = int(step.TargetValue)
		}
	default:
		rec.DurationKind = compiler.DurationOpen
	}

	switch step.Intensity {
	case typedef.IntensityRest:
		rec.Intensity = compiler.IntensityRest
	case typedef.IntensityWarmup:
		rec.Intensity = compiler.IntensityWarmup
	case typedef.IntensityCooldown:
		rec.Intensity = compiler.IntensityCooldown
	default:
		rec.Intensity = compiler.IntensityActive
	}

	return rec
}
