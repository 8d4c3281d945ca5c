package fitfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/proto"

	"github.com/amakaflow/fittool/pkg/compiler"
	fterrors "github.com/amakaflow/fittool/pkg/errors"
	"github.com/amakaflow/fittool/pkg/workout"
)

func intp(v int) *int { return &v }

func compileFixture(t *testing.T, spec *workout.WorkoutSpec) (*compiler.Program, compiler.Classification) {
	t.Helper()
	c, err := compiler.New()
	if err != nil {
		t.Fatalf("compiler.New() error: %v", err)
	}
	prog, err := c.Compile(spec, compiler.Options{})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return prog, compiler.ClassifySport(prog.Categories)
}

func strengthSpec() *workout.WorkoutSpec {
	return &workout.WorkoutSpec{
		Title: "Leg Day",
		Settings: workout.Settings{
			DefaultRestType: workout.RestTimed,
			DefaultRestSec:  intp(60),
		},
		Blocks: []workout.Block{{
			Name: "Main",
			Exercises: []workout.Exercise{
				{Name: "Goblet Squat", Reps: workout.Reps{Raw: "10"}, Sets: 3},
				{Name: "Walking Lunge", Reps: workout.Reps{Raw: "12"}},
			},
		}},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	prog, class := compileFixture(t, strengthSpec())

	data, err := Encode(prog, class, EncodeOptions{
		TimeCreated:  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		SerialNumber: 12345,
	})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Encode() returned empty payload")
	}

	file, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if file.Name != "Leg Day" {
		t.Errorf("Name = %q, want Leg Day", file.Name)
	}
	if file.Sport != "training" {
		t.Errorf("Sport = %q, want training", file.Sport)
	}
	if file.SubSport != "strength_training" {
		t.Errorf("SubSport = %q, want strength_training", file.SubSport)
	}
	if file.Manufacturer != "development" {
		t.Errorf("Manufacturer = %q, want development", file.Manufacturer)
	}
	if len(file.Steps) != len(prog.Steps) {
		t.Fatalf("len(Steps) = %d, want %d", len(file.Steps), len(prog.Steps))
	}

	steps := compiler.Decompile(file.Steps, file.Titles)
	var squat *compiler.DecompiledStep
	for i := range steps {
		if steps[i].Name == "Goblet Squat" {
			squat = &steps[i]
		}
	}
	if squat == nil {
		t.Fatal("Goblet Squat not reconstructed from decoded steps")
	}
	// The repeat marker carries total passes, the reconstruction adds the
	// exercise step's own pass back in.
	if squat.Sets != 4 {
		t.Errorf("Goblet Squat Sets = %d, want 4", squat.Sets)
	}
	if squat.Reps != 10 {
		t.Errorf("Goblet Squat Reps = %d, want 10", squat.Reps)
	}
}

func TestEncodeExerciseTitles(t *testing.T) {
	prog, class := compileFixture(t, strengthSpec())

	data, err := Encode(prog, class, EncodeOptions{SerialNumber: 1})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	file, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	// Goblet Squat has a dictionary movement id, Walking Lunge too; both
	// titles should resolve through the exact (category, id) entry.
	found := make(map[string]bool)
	for _, name := range file.Titles {
		found[name] = true
	}
	for _, want := range []string{"Goblet Squat", "Walking Lunge"} {
		if !found[want] {
			t.Errorf("title %q missing from decoded titles %v", want, file.Titles)
		}
	}
}

func TestEncodeRunKeywordSport(t *testing.T) {
	// "run" is a builtin keyword mapping to Cardio (2), not Run (32), so a
	// run-only workout still exports as training/cardio_training; sport
	// running is reserved for the explicit override.
	spec := &workout.WorkoutSpec{
		Title: "Track Intervals",
		Blocks: []workout.Block{{
			Exercises: []workout.Exercise{
				{Name: "400m Run"},
			},
		}},
	}
	prog, class := compileFixture(t, spec)

	data, err := Encode(prog, class, EncodeOptions{SerialNumber: 1})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	file, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if file.Sport != "training" {
		t.Errorf("Sport = %q, want training", file.Sport)
	}
	if file.SubSport != "cardio_training" {
		t.Errorf("SubSport = %q, want cardio_training", file.SubSport)
	}
}

func TestEncodeRunningSportOverride(t *testing.T) {
	spec := &workout.WorkoutSpec{
		Title: "Track Intervals",
		Blocks: []workout.Block{{
			Exercises: []workout.Exercise{
				{Name: "400m Run"},
			},
		}},
	}
	prog, _ := compileFixture(t, spec)

	class, ok := compiler.SportByName("running")
	if !ok {
		t.Fatal(`SportByName("running") not found`)
	}
	data, err := Encode(prog, class, EncodeOptions{SerialNumber: 1})
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	file, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if file.Sport != "running" {
		t.Errorf("Sport = %q, want running", file.Sport)
	}
}

func TestEncodeEmptyProgram(t *testing.T) {
	if _, err := Encode(nil, compiler.Classification{}, EncodeOptions{}); !errors.Is(err, fterrors.ErrEmptyWorkout) {
		t.Errorf("Encode(nil) error = %v, want ErrEmptyWorkout", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a fit file at all")))
	if !errors.Is(err, fterrors.ErrDecode) {
		t.Errorf("Decode(garbage) error = %v, want ErrDecode", err)
	}
}

func TestTruncateRuneBoundary(t *testing.T) {
	long := strings.Repeat("ö", 60)
	got := truncate(long, 50)
	if n := utf8.RuneCountInString(got); n != 50 {
		t.Errorf("rune count = %d, want 50", n)
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if short := truncate("Goblet Squat", 50); short != "Goblet Squat" {
		t.Errorf("truncate(short) = %q, want unchanged", short)
	}
}

func TestDecodeWrongFileType(t *testing.T) {
	fit := &proto.FIT{}
	fileID := mesgdef.NewFileId(nil).
		SetType(typedef.FileActivity).
		SetManufacturer(typedef.ManufacturerDevelopment).
		SetTimeCreated(time.Now()).
		SetSerialNumber(7)
	fit.Messages = append(fit.Messages, fileID.ToMesg(nil))

	var buf bytes.Buffer
	if err := encoder.New(&buf).Encode(fit); err != nil {
		t.Fatalf("fixture encode error: %v", err)
	}

	_, err := Decode(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, fterrors.ErrNotWorkoutFile) {
		t.Errorf("Decode(activity file) error = %v, want ErrNotWorkoutFile", err)
	}
}
