package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/amakaflow/fittool/pkg/bootstrap"
	"github.com/amakaflow/fittool/pkg/compiler"
	"github.com/amakaflow/fittool/pkg/fitfile"
	"github.com/amakaflow/fittool/pkg/preview"
)

func main() {
	inputPath := flag.String("input", "", "Path to FIT workout file")
	raw := flag.Bool("raw", false, "Print raw step records without collapsing repeats")
	flag.Parse()

	bootstrap.InitLogger("fit-inspect")

	if *inputPath == "" {
		fmt.Println("Please provide input file with -input")
		os.Exit(1)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		slog.Error("failed to open file", "path", *inputPath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	file, err := fitfile.Decode(f)
	if err != nil {
		slog.Error("failed to decode FIT file", "path", *inputPath, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Workout: %s\n", file.Name)
	fmt.Printf("Sport: %s", file.Sport)
	if file.SubSport != "" {
		fmt.Printf(" / %s", file.SubSport)
	}
	fmt.Println()
	if file.Source != "" {
		fmt.Printf("Source: %s\n", file.Source)
	} else if file.Manufacturer != "" {
		fmt.Printf("Manufacturer: %s\n", file.Manufacturer)
	}
	if !file.Created.IsZero() {
		fmt.Printf("Created: %s\n", file.Created.Format("2006-01-02 15:04:05"))
	}

	v := fitfile.Validate(file)
	for _, issue := range v.Issues {
		fmt.Printf("ISSUE: %s\n", issue)
	}
	for _, warning := range v.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	if *raw {
		printRaw(w, file.Steps)
	} else {
		printCollapsed(w, compiler.Decompile(file.Steps, file.Titles))
	}
	w.Flush()
}

func printRaw(w *tabwriter.Writer, records []compiler.StepRecord) {
	fmt.Fprintln(w, "Index\tName\tIntensity\tDuration\tCategory\tExercise")
	fmt.Fprintln(w, "-----\t----\t---------\t--------\t--------\t--------")
	for _, rec := range records {
		if rec.IsRepeat {
			fmt.Fprintf(w, "%d\t[repeat]\t\tback to %d x%d\t\t\n", rec.Index, rec.TargetIndex, rec.RepeatCount)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n",
			rec.Index, rec.Name, rec.Intensity, rawDuration(rec), rec.CategoryID, rec.ExerciseID)
	}
}

func rawDuration(rec compiler.StepRecord) string {
	switch rec.DurationKind {
	case compiler.DurationTime:
		return preview.FormatDuration(rec.DurationSec)
	case compiler.DurationDistance:
		return preview.FormatDistance(rec.DistanceM)
	case compiler.DurationReps:
		return fmt.Sprintf("%d reps", rec.Reps)
	default:
		return "open"
	}
}

func printCollapsed(w *tabwriter.Writer, steps []compiler.DecompiledStep) {
	fmt.Fprintln(w, "Name\tType\tSets\tDuration\tCategory")
	fmt.Fprintln(w, "----\t----\t----\t--------\t--------")
	for _, step := range steps {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			step.Name, step.Type, step.Sets, stepDuration(step), step.Category)
	}
}

func stepDuration(step compiler.DecompiledStep) string {
	switch step.DurationKind {
	case compiler.DurationTime:
		return preview.FormatDuration(step.DurationSec)
	case compiler.DurationDistance:
		return preview.FormatDistance(step.DistanceM)
	case compiler.DurationReps:
		return fmt.Sprintf("%d reps", step.Reps)
	default:
		return "open"
	}
}
