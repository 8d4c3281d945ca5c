// Package garmin resolves free-text exercise names to FIT exercise
// categories and movement ids, and validates category ids against the
// range Garmin devices actually render.
package garmin

// FIT exercise category ids. Devices render ids 0 through 32; anything
// above that shows as "Unknown Exercise" on watches.
const (
	CategoryBenchPress        = 0
	CategoryCalfRaise         = 1
	CategoryCardio            = 2
	CategoryCarry             = 3
	CategoryChop              = 4
	CategoryCore              = 5
	CategoryCrunch            = 6
	CategoryCurl              = 7
	CategoryDeadlift          = 8
	CategoryFlye              = 9
	CategoryHipRaise          = 10
	CategoryHipStability      = 11
	CategoryHipSwing          = 12
	CategoryHyperextension    = 13
	CategoryLateralRaise      = 14
	CategoryLegCurl           = 15
	CategoryLegRaise          = 16
	CategoryLunge             = 17
	CategoryOlympicLift       = 18
	CategoryPlank             = 19
	CategoryPlyo              = 20
	CategoryPullUp            = 21
	CategoryPushUp            = 22
	CategoryRow               = 23
	CategoryShoulderPress     = 24
	CategoryShoulderStability = 25
	CategoryShrug             = 26
	CategorySitUp             = 27
	CategorySquat             = 28
	CategoryTotalBody         = 29
	CategoryTricepsExtension  = 30
	CategoryWarmUp            = 31
	CategoryRun               = 32
)

// MaxValidCategoryID is the highest category id devices display by name.
const MaxValidCategoryID = 32

// DefaultCategoryID is the fallback for names nothing else can place.
const DefaultCategoryID = CategoryCore

var categoryLabels = map[int]string{
	CategoryBenchPress:        "Bench Press",
	CategoryCalfRaise:         "Calf Raise",
	CategoryCardio:            "Cardio",
	CategoryCarry:             "Carry",
	CategoryChop:              "Chop",
	CategoryCore:              "Core",
	CategoryCrunch:            "Crunch",
	CategoryCurl:              "Curl",
	CategoryDeadlift:          "Deadlift",
	CategoryFlye:              "Flye",
	CategoryHipRaise:          "Hip Raise",
	CategoryHipStability:      "Hip Stability",
	CategoryHipSwing:          "Hip Swing",
	CategoryHyperextension:    "Hyperextension",
	CategoryLateralRaise:      "Lateral Raise",
	CategoryLegCurl:           "Leg Curl",
	CategoryLegRaise:          "Leg Raise",
	CategoryLunge:             "Lunge",
	CategoryOlympicLift:       "Olympic Lift",
	CategoryPlank:             "Plank",
	CategoryPlyo:              "Plyo",
	CategoryPullUp:            "Pull Up",
	CategoryPushUp:            "Push Up",
	CategoryRow:               "Row",
	CategoryShoulderPress:     "Shoulder Press",
	CategoryShoulderStability: "Shoulder Stability",
	CategoryShrug:             "Shrug",
	CategorySitUp:             "Sit Up",
	CategorySquat:             "Squat",
	CategoryTotalBody:         "Total Body",
	CategoryTricepsExtension:  "Triceps Extension",
	CategoryWarmUp:            "Warm Up",
	CategoryRun:               "Run",
}

// categoryRemap redirects out-of-range ids produced by older documents to
// the nearest in-range category: 33-38 were cardio-machine extensions,
// 39-43 were whole-body conditioning.
var categoryRemap = map[int]int{
	33: CategoryCardio,
	34: CategoryCardio,
	35: CategoryCardio,
	36: CategoryCardio,
	37: CategoryCardio,
	38: CategoryCardio,
	39: CategoryTotalBody,
	40: CategoryTotalBody,
	41: CategoryTotalBody,
	42: CategoryTotalBody,
	43: CategoryTotalBody,
}

// CategoryLabel returns the human-readable name for a category id, or
// "Exercise" when the id is not a device-renderable category.
func CategoryLabel(id int) string {
	if label, ok := categoryLabels[id]; ok {
		return label
	}
	return "Exercise"
}

// ValidateCategoryID maps any category id onto a device-renderable one.
// Ids at or below MaxValidCategoryID pass through unchanged, known
// out-of-range ids follow the remap table, and everything else falls back
// to Total Body. Idempotent: validating a validated id is a no-op.
func ValidateCategoryID(id int) int {
	if id <= MaxValidCategoryID {
		return id
	}
	if mapped, ok := categoryRemap[id]; ok {
		return mapped
	}
	return CategoryTotalBody
}
