package domain

// MealType identifies which meal of the day a Meal belongs to.
// Values are lowercase because they travel on the wire as-is.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MacroMode says whether macro targets are percentages of calories or
// absolute gram amounts.
type MacroMode string

const (
	MacroModePercent MacroMode = "percent"
	MacroModeGrams   MacroMode = "grams"
)

func (m MacroMode) String() string { return string(m) }

func (m MacroMode) IsValid() bool {
	switch m {
	case MacroModePercent, MacroModeGrams:
		return true
	}
	return false
}

// Status classifies a day's calories against target ± tolerance.
// Ordered: under < ok < over.
type Status string

const (
	StatusUnder Status = "under"
	StatusOK    Status = "ok"
	StatusOver  Status = "over"
)

func (s Status) String() string { return string(s) }

// InsightSeverity is the tone of a daily insight.
type InsightSeverity string

const (
	InsightPositive InsightSeverity = "positive"
	InsightNeutral  InsightSeverity = "neutral"
	InsightWarning  InsightSeverity = "warning"
)

func (s InsightSeverity) String() string { return string(s) }

// NutritionSource says how a nutrition event came to be.
type NutritionSource string

const (
	NutritionSourceManual     NutritionSource = "manual"
	NutritionSourceCorrection NutritionSource = "correction"
)

func (s NutritionSource) String() string { return string(s) }
