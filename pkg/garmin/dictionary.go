package garmin

import (
	_ "embed"
	"encoding/json"
	"sync"

	fterrors "github.com/amakaflow/fittool/pkg/errors"
)

//go:embed data/exercises.json
var dictionaryJSON []byte

// Category is one FIT exercise category as carried in the dictionary.
type Category struct {
	ID   int    `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Movement is a dictionary entry for a known exercise, keyed by its
// normalized name. ExerciseNameID, when present, is the real FIT movement
// id within the category (e.g. GOBLET_SQUAT = 37).
type Movement struct {
	CategoryID     int    `json:"category_id"`
	CategoryKey    string `json:"category_key"`
	CategoryName   string `json:"category_name"`
	ExerciseKey    string `json:"exercise_key,omitempty"`
	DisplayName    string `json:"display_name"`
	ExerciseNameID *int   `json:"exercise_name_id,omitempty"`
}

// Keyword maps a substring to a category for names with no exact entry.
type Keyword struct {
	CategoryID   int    `json:"category_id"`
	CategoryKey  string `json:"category_key"`
	CategoryName string `json:"category_name"`
	DisplayName  string `json:"display_name,omitempty"`
}

// Dictionary is the bundled exercise database. It is parsed once and
// read-only afterwards.
type Dictionary struct {
	Categories map[string]Category           `json:"categories"`
	Exercises  map[string]Movement           `json:"exercises"`
	Keywords   map[string]map[string]Keyword `json:"keywords"`
}

var (
	dictOnce sync.Once
	dict     *Dictionary
	dictErr  error
)

func loadDictionary() (*Dictionary, error) {
	dictOnce.Do(func() {
		var d Dictionary
		if err := json.Unmarshal(dictionaryJSON, &d); err != nil {
			dictErr = fterrors.ErrDictionary.WithCause(err)
			return
		}
		dict = &d
	})
	return dict, dictErr
}
