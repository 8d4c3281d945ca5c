package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/amakaflow/fittool/pkg/bootstrap"
	"github.com/amakaflow/fittool/pkg/compiler"
	"github.com/amakaflow/fittool/pkg/fitfile"
	"github.com/amakaflow/fittool/pkg/preview"
	"github.com/amakaflow/fittool/pkg/workout"
)

func main() {
	inputFile := flag.String("input", "", "Path to input workout document (JSON or YAML)")
	outputFile := flag.String("output", "output.fit", "Path to output FIT file")
	sportName := flag.String("sport", "", "Override detected sport (strength, cardio, running)")
	lapButton := flag.Bool("lap-button", false, "Make every exercise step end on the lap button")
	showPreview := flag.Bool("preview", false, "Print the step preview before writing")
	flag.Parse()

	bootstrap.InitLogger("fit-gen")

	if *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	spec, err := workout.Load(*inputFile)
	if err != nil {
		slog.Error("failed to load workout document", "path", *inputFile, "error", err)
		os.Exit(1)
	}

	c, err := compiler.New()
	if err != nil {
		slog.Error("failed to initialize compiler", "error", err)
		os.Exit(1)
	}

	prog, err := c.Compile(spec, compiler.Options{UseLapButton: *lapButton})
	if err != nil {
		slog.Error("failed to compile workout", "error", err)
		os.Exit(1)
	}

	class := compiler.ClassifySport(prog.Categories)
	if *sportName != "" {
		override, ok := compiler.SportByName(*sportName)
		if !ok {
			slog.Error("unknown sport", "sport", *sportName)
			os.Exit(1)
		}
		class = override
	}

	if *showPreview {
		printPreview(preview.Build(prog, class))
	}

	data, err := fitfile.Encode(prog, class, fitfile.EncodeOptions{})
	if err != nil {
		slog.Error("failed to encode FIT file", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, data, 0644); err != nil {
		slog.Error("failed to write output file", "path", *outputFile, "error", err)
		os.Exit(1)
	}

	slog.Info("wrote FIT file",
		"path", *outputFile,
		"bytes", len(data),
		"title", prog.Title,
		"sport", class.Name,
		"steps", len(prog.Steps),
		"exercises", prog.ExerciseCount(),
	)
	fmt.Printf("Successfully wrote FIT file to %s (%d bytes)\n", *outputFile, len(data))
}

func printPreview(sum *preview.Summary) {
	fmt.Printf("%s [%s]\n", sum.Title, sum.SportDisplay)
	for _, step := range sum.Steps {
		line := fmt.Sprintf("  %-10s %s", step.Type, step.Name)
		if step.Sets > 1 {
			line += fmt.Sprintf(" x%d", step.Sets)
		}
		fmt.Printf("%s (%s)\n", line, step.DurationDisplay)
	}
	fmt.Printf("%d exercises, %d sets, %d rests\n", sum.ExerciseCount, sum.TotalSets, sum.RestCount)
	for _, w := range sum.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}
