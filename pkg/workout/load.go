package workout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	fterrors "github.com/amakaflow/fittool/pkg/errors"
)

// Parse decodes a workout document. YAML and JSON are both accepted; JSON
// is a subset of YAML so one decode path serves.
func Parse(data []byte) (*WorkoutSpec, error) {
	var spec WorkoutSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fterrors.ErrUnreadableDoc.WithCause(err)
	}
	return &spec, nil
}

// Load reads a workout document from disk.
func Load(path string) (*WorkoutSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fterrors.ErrUnreadableDoc.WithCause(fmt.Errorf("read %s: %w", path, err))
	}
	return Parse(data)
}
