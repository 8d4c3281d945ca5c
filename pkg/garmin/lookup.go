package garmin

import (
	"regexp"
	"sort"
	"strings"
)

// MatchType identifies which stage of the lookup chain produced a match.
type MatchType string

const (
	MatchBuiltin MatchType = "builtin_keyword"
	MatchExact   MatchType = "exact"
	MatchKeyword MatchType = "keyword"
	MatchFuzzy   MatchType = "fuzzy"
	MatchDefault MatchType = "default"
)

// Match is the result of resolving an exercise name.
type Match struct {
	CategoryID   int
	CategoryKey  string
	CategoryName string
	ExerciseKey  string
	DisplayName  string

	// ExerciseNameID is the real FIT movement id within the category when
	// the dictionary knows one, otherwise -1.
	ExerciseNameID int

	Type           MatchType
	MatchedKeyword string
	Confidence     float64
	Input          string
	Normalized     string
}

// fuzzyThreshold is the minimum similarity for a fuzzy match to count.
const fuzzyThreshold = 0.6

// builtinKeyword is a high-priority containment rule. These override exact
// dictionary matches so that, for example, "run" maps to Cardio (2) in
// mixed workouts; Run (32) only renders under sport type running.
type builtinKeyword struct {
	keyword      string
	categoryID   int
	categoryKey  string
	categoryName string
	displayName  string
}

// Order matters: earlier entries win, so multi-word keywords precede their
// single-word prefixes ("ski erg" before "ski").
var builtinKeywords = []builtinKeyword{
	{"run", CategoryCardio, "CARDIO", "Cardio", "Run"},
	{"running", CategoryCardio, "CARDIO", "Cardio", "Run"},
	{"jog", CategoryCardio, "CARDIO", "Cardio", "Run"},
	{"sprint", CategoryCardio, "CARDIO", "Cardio", "Run"},
	{"ski erg", CategoryCardio, "CARDIO", "Cardio", "Ski Erg"},
	{"ski mogul", CategoryCardio, "CARDIO", "Cardio", "Ski Erg"},
	{"ski", CategoryCardio, "CARDIO", "Cardio", "Ski Erg"},
	{"row erg", CategoryRow, "ROW", "Row", "Row"},
	{"rower", CategoryRow, "ROW", "Row", "Row"},
	{"indoor row", CategoryRow, "ROW", "Row", "Indoor Row"},
	{"assault bike", CategoryCardio, "CARDIO", "Cardio", "Assault Bike"},
	{"echo bike", CategoryCardio, "CARDIO", "Cardio", "Echo Bike"},
	{"air bike", CategoryCardio, "CARDIO", "Cardio", "Air Bike"},
	{"bike erg", CategoryCardio, "CARDIO", "Cardio", "Bike Erg"},
	{"burpee", CategoryTotalBody, "TOTAL_BODY", "Total Body", "Burpee"},
	{"wall ball", CategorySquat, "SQUAT", "Squat", "Wall Ball"},
}

var (
	reSupersetPrefix = regexp.MustCompile(`^[a-z]\d+[;:\s]+`)
	reRepCount       = regexp.MustCompile(`\s*x\s*\d+.*$`)
	rePerSide        = regexp.MustCompile(`\s+(each|per)\s+(side|arm|leg).*$`)
	reTrailingDist   = regexp.MustCompile(`\s*[\d.]+\s*(m|km)\s*$`)
	reLeadingDist    = regexp.MustCompile(`^[\d.]+\s*(m|km)\s+`)
)

var equipmentPrefixes = []string{"db ", "kb ", "bb ", "sb ", "mb ", "trx ", "cable ", "band "}

// Normalize prepares an exercise name for matching: lowercase, then strip
// superset labels ("A1:"), equipment shorthand, rep counts ("x10"),
// per-side suffixes, and leading or trailing distances ("500m Row").
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSpace(strings.TrimRight(s, "|"))

	s = reSupersetPrefix.ReplaceAllString(s, "")
	for _, prefix := range equipmentPrefixes {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = reRepCount.ReplaceAllString(s, "")
	s = rePerSide.ReplaceAllString(s, "")
	s = reTrailingDist.ReplaceAllString(s, "")
	s = reLeadingDist.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

// Lookup resolves exercise names against the bundled dictionary.
type Lookup struct {
	dict *Dictionary

	// Dictionary key orders are precomputed so containment and similarity
	// scans are deterministic regardless of map iteration order.
	keywordKeys []string
	fuzzyKeys   []string
}

// NewLookup loads the bundled dictionary and builds a resolver.
func NewLookup() (*Lookup, error) {
	d, err := loadDictionary()
	if err != nil {
		return nil, err
	}

	l := &Lookup{dict: d}

	for k := range d.Keywords["en"] {
		l.keywordKeys = append(l.keywordKeys, k)
	}
	// Longer keywords first so "pull up" wins over "up"-style fragments.
	sort.Slice(l.keywordKeys, func(i, j int) bool {
		a, b := l.keywordKeys[i], l.keywordKeys[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	for k := range d.Exercises {
		l.fuzzyKeys = append(l.fuzzyKeys, k)
	}
	// Shortest first; a candidate replaces the best only on a strictly
	// higher score, so ties resolve to the shortest key.
	sort.Slice(l.fuzzyKeys, func(i, j int) bool {
		a, b := l.fuzzyKeys[i], l.fuzzyKeys[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})

	return l, nil
}

// Find resolves an exercise name to its best category match. It never
// fails: names nothing can place resolve to Core with MatchDefault.
func (l *Lookup) Find(name string) Match {
	normalized := Normalize(name)

	// 1. Builtin keywords override everything else.
	for _, bk := range builtinKeywords {
		if strings.Contains(normalized, bk.keyword) {
			return Match{
				CategoryID:     bk.categoryID,
				CategoryKey:    bk.categoryKey,
				CategoryName:   bk.categoryName,
				DisplayName:    bk.displayName,
				ExerciseNameID: -1,
				Type:           MatchBuiltin,
				MatchedKeyword: bk.keyword,
				Confidence:     1.0,
				Input:          name,
				Normalized:     normalized,
			}
		}
	}

	// 2. Exact dictionary match.
	if mv, ok := l.dict.Exercises[normalized]; ok {
		return l.movementMatch(mv, MatchExact, 1.0, name, normalized, "")
	}

	// 3. Keyword containment.
	for _, kw := range l.keywordKeys {
		if strings.Contains(normalized, kw) {
			info := l.dict.Keywords["en"][kw]
			return Match{
				CategoryID:     ValidateCategoryID(info.CategoryID),
				CategoryKey:    info.CategoryKey,
				CategoryName:   info.CategoryName,
				DisplayName:    info.DisplayName,
				ExerciseNameID: -1,
				Type:           MatchKeyword,
				MatchedKeyword: kw,
				Confidence:     1.0,
				Input:          name,
				Normalized:     normalized,
			}
		}
	}

	// 4. Fuzzy match against dictionary keys.
	var bestKey string
	bestScore := 0.0
	for _, key := range l.fuzzyKeys {
		score := similarityScore(normalized, key)
		if score > bestScore && score > fuzzyThreshold {
			bestScore = score
			bestKey = key
		}
	}
	if bestKey != "" {
		return l.movementMatch(l.dict.Exercises[bestKey], MatchFuzzy, bestScore, name, normalized, bestKey)
	}

	// 5. Default fallback.
	return Match{
		CategoryID:     DefaultCategoryID,
		CategoryKey:    "CORE",
		CategoryName:   "Core",
		ExerciseNameID: -1,
		Type:           MatchDefault,
		Confidence:     0.0,
		Input:          name,
		Normalized:     normalized,
	}
}

func (l *Lookup) movementMatch(mv Movement, mt MatchType, confidence float64, input, normalized, matchedKey string) Match {
	nameID := -1
	if mv.ExerciseNameID != nil {
		nameID = *mv.ExerciseNameID
	}
	return Match{
		CategoryID:     ValidateCategoryID(mv.CategoryID),
		CategoryKey:    mv.CategoryKey,
		CategoryName:   mv.CategoryName,
		ExerciseKey:    mv.ExerciseKey,
		DisplayName:    mv.DisplayName,
		ExerciseNameID: nameID,
		Type:           mt,
		MatchedKeyword: matchedKey,
		Confidence:     confidence,
		Input:          input,
		Normalized:     normalized,
	}
}
