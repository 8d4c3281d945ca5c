package garmin

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase and trim", "  Goblet Squat  ", "goblet squat"},
		{"trailing pipe", "Goblet Squat |", "goblet squat"},
		{"superset label", "A1: Bench Press", "bench press"},
		{"superset label semicolon", "B2; Deadlift", "deadlift"},
		{"equipment prefix db", "DB Bench Press", "bench press"},
		{"equipment prefix kb", "KB Swing", "swing"},
		{"rep count suffix", "Push Up x10", "push up"},
		{"rep count with space", "Squat x 12 @ 60kg", "squat"},
		{"each side suffix", "Lunge each side", "lunge"},
		{"per leg suffix", "Step Up per leg x8", "step up"},
		{"leading distance", "500m Row", "row"},
		{"trailing distance", "Run 400m", "run"},
		{"trailing km", "Ski 1.5km", "ski"},
		{"combined", "A1: DB Bench Press x10", "bench press"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookupFind(t *testing.T) {
	lookup, err := NewLookup()
	if err != nil {
		t.Fatalf("NewLookup() error: %v", err)
	}

	tests := []struct {
		name           string
		input          string
		wantCategoryID int
		wantType       MatchType
		wantDisplay    string
	}{
		// Builtin keywords beat everything, including exact entries, so
		// running inside a mixed workout lands on Cardio not Run (32).
		{"run builtin", "500m Run", CategoryCardio, MatchBuiltin, "Run"},
		{"jog builtin", "Easy Jog", CategoryCardio, MatchBuiltin, "Run"},
		{"ski erg builtin", "Ski Erg", CategoryCardio, MatchBuiltin, "Ski Erg"},
		{"rower builtin", "Rower", CategoryRow, MatchBuiltin, "Row"},
		{"air bike builtin", "Air Bike", CategoryCardio, MatchBuiltin, "Air Bike"},
		{"burpee builtin", "Burpee Box Jump", CategoryTotalBody, MatchBuiltin, "Burpee"},
		{"wall ball builtin", "Wall Ball x15", CategorySquat, MatchBuiltin, "Wall Ball"},

		{"exact goblet squat", "Goblet Squat", CategorySquat, MatchExact, "Goblet Squat"},
		{"exact with equipment prefix", "DB Bench Press", CategoryBenchPress, MatchExact, "Bench Press"},
		{"exact romanian deadlift", "Romanian Deadlift", CategoryDeadlift, MatchExact, "Romanian Deadlift"},

		{"keyword cossack squat", "Cossack Squat", CategorySquat, MatchKeyword, ""},
		{"keyword zercher deadlift", "Zercher Deadlift", CategoryDeadlift, MatchKeyword, ""},

		{"fuzzy skull crusher typo", "Skulcrusher", CategoryTricepsExtension, MatchFuzzy, "Skull Crusher"},

		{"default unknown", "Qzw Blorp", CategoryCore, MatchDefault, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lookup.Find(tt.input)
			if got.CategoryID != tt.wantCategoryID {
				t.Errorf("Find(%q).CategoryID = %d, want %d", tt.input, got.CategoryID, tt.wantCategoryID)
			}
			if got.Type != tt.wantType {
				t.Errorf("Find(%q).Type = %q, want %q", tt.input, got.Type, tt.wantType)
			}
			if tt.wantDisplay != "" && got.DisplayName != tt.wantDisplay {
				t.Errorf("Find(%q).DisplayName = %q, want %q", tt.input, got.DisplayName, tt.wantDisplay)
			}
		})
	}
}

func TestLookupFindExerciseNameID(t *testing.T) {
	lookup, err := NewLookup()
	if err != nil {
		t.Fatalf("NewLookup() error: %v", err)
	}

	got := lookup.Find("Goblet Squat")
	if got.ExerciseNameID != 37 {
		t.Errorf("Find(Goblet Squat).ExerciseNameID = %d, want 37", got.ExerciseNameID)
	}

	got = lookup.Find("Front Squat")
	if got.ExerciseNameID != -1 {
		t.Errorf("Find(Front Squat).ExerciseNameID = %d, want -1", got.ExerciseNameID)
	}
}

func TestLookupFindDeterministic(t *testing.T) {
	lookup, err := NewLookup()
	if err != nil {
		t.Fatalf("NewLookup() error: %v", err)
	}

	first := lookup.Find("Skulcrusher")
	for i := 0; i < 50; i++ {
		got := lookup.Find("Skulcrusher")
		if got != first {
			t.Fatalf("Find() not deterministic: run %d = %+v, first = %+v", i, got, first)
		}
	}
}

func BenchmarkLookupFind(b *testing.B) {
	lookup, err := NewLookup()
	if err != nil {
		b.Fatalf("NewLookup() error: %v", err)
	}

	names := []string{
		"Goblet Squat",
		"500m Run",
		"Cossack Squat",
		"Skulcrusher",
		"Qzw Blorp",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lookup.Find(names[i%len(names)])
	}
}
