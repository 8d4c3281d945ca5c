package compiler

import "testing"

func categorySet(ids ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestClassifySport(t *testing.T) {
	tests := []struct {
		name          string
		categories    map[int]struct{}
		wantSport     int
		wantSubSport  int
		wantSportName string
	}{
		{"running only", categorySet(32), SportRunning, SubSportGeneric, "running"},
		{"running plus strength", categorySet(32, 28), SportTraining, SubSportCardioTraining, "cardio"},
		{"cardio machine plus strength", categorySet(2, 28, 8), SportTraining, SubSportCardioTraining, "cardio"},
		{"row machine only", categorySet(23), SportTraining, SubSportCardioTraining, "cardio"},
		{"strength only", categorySet(28, 8, 0), SportTraining, SubSportStrengthTraining, "strength"},
		{"empty set", categorySet(), SportTraining, SubSportStrengthTraining, "strength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySport(tt.categories)
			if got.SportID != tt.wantSport || got.SubSportID != tt.wantSubSport {
				t.Errorf("ClassifySport() = %d/%d, want %d/%d",
					got.SportID, got.SubSportID, tt.wantSport, tt.wantSubSport)
			}
			if got.Name != tt.wantSportName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantSportName)
			}
		})
	}
}

func TestModalities(t *testing.T) {
	tests := []struct {
		name        string
		categories  map[int]struct{}
		hasRunning  bool
		hasCardio   bool
		hasStrength bool
	}{
		{"running only", categorySet(32), true, false, false},
		{"cardio only", categorySet(2, 23), false, true, false},
		{"strength only", categorySet(28, 8), false, false, true},
		{"all three", categorySet(32, 23, 28), true, true, true},
		{"empty", categorySet(), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c, s := Modalities(tt.categories)
			if r != tt.hasRunning || c != tt.hasCardio || s != tt.hasStrength {
				t.Errorf("Modalities() = %v/%v/%v, want %v/%v/%v",
					r, c, s, tt.hasRunning, tt.hasCardio, tt.hasStrength)
			}
		})
	}
}

func TestSportByName(t *testing.T) {
	tests := []struct {
		name     string
		wantOK   bool
		wantID   int
		wantSub  int
	}{
		{"strength", true, SportTraining, SubSportStrengthTraining},
		{"cardio", true, SportTraining, SubSportCardioTraining},
		{"running", true, SportRunning, SubSportGeneric},
		{"swimming", false, 0, 0},
		{"", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run("name "+tt.name, func(t *testing.T) {
			got, ok := SportByName(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("SportByName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && (got.SportID != tt.wantID || got.SubSportID != tt.wantSub) {
				t.Errorf("SportByName(%q) = %d/%d, want %d/%d",
					tt.name, got.SportID, got.SubSportID, tt.wantID, tt.wantSub)
			}
		})
	}
}

func TestParseStructure(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"3 rounds", 3},
		{"4 Rounds for time", 4},
		{"rounds", 1},
		{"", 1},
		{"AMRAP 12", 12},
	}

	for _, tt := range tests {
		if got := parseStructure(tt.input); got != tt.want {
			t.Errorf("parseStructure(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestIsUserConfirmedName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Burpee Box Jump", true},
		{"Wall Ball", true},
		{"Bench Press to Push Up", true},
		{"500m Run", false},
		{"Squat 3x10", false},
		{"Push Up x10", false},
		{"lower case name", false},
		{"X", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isUserConfirmedName(tt.input); got != tt.want {
			t.Errorf("isUserConfirmedName(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
