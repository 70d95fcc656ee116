package domain

// Settings holds the user's calorie and macro targets. Exactly one row
// exists per user, provisioned out-of-band; this system only reads and
// updates it.
type Settings struct {
	CalorieTarget    int
	CalorieTolerance int
	MacroMode        MacroMode
	ProteinTarget    int
	FatTarget        int
	CarbsTarget      int
}

// Validate checks the settings step and sum rules and collects all
// violations. Calorie values must be non-negative multiples of 50, macro
// targets non-negative multiples of 5, and in percent mode the macro
// targets must sum to exactly 100.
func (s Settings) Validate() error {
	var errs []FieldError

	if !multipleOf(s.CalorieTarget, 50) {
		errs = append(errs, FieldError{Field: "calorie_target", Message: "Calorie target and tolerance must be multiples of 50"})
	}
	if !multipleOf(s.CalorieTolerance, 50) {
		errs = append(errs, FieldError{Field: "calorie_tolerance", Message: "Calorie target and tolerance must be multiples of 50"})
	}

	if !multipleOf(s.ProteinTarget, 5) {
		errs = append(errs, FieldError{Field: "protein_target", Message: "Macro targets must be multiples of 5"})
	}
	if !multipleOf(s.FatTarget, 5) {
		errs = append(errs, FieldError{Field: "fat_target", Message: "Macro targets must be multiples of 5"})
	}
	if !multipleOf(s.CarbsTarget, 5) {
		errs = append(errs, FieldError{Field: "carbs_target", Message: "Macro targets must be multiples of 5"})
	}

	if !s.MacroMode.IsValid() {
		errs = append(errs, FieldError{Field: "macro_mode", Message: "macro_mode must be one of percent, grams"})
	}

	if s.MacroMode == MacroModePercent {
		if s.ProteinTarget+s.FatTarget+s.CarbsTarget != 100 {
			errs = append(errs, FieldError{Field: "macro_mode", Message: "Macro targets must sum to 100 when macro_mode=percent"})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func multipleOf(v, step int) bool {
	return v >= 0 && v%step == 0
}

// ComputeStatus classifies calories against the settings' inclusive
// target ± tolerance window: below it is under, above it is over,
// inside (including both bounds) is ok.
func ComputeStatus(calories int, s Settings) Status {
	lower := s.CalorieTarget - s.CalorieTolerance
	upper := s.CalorieTarget + s.CalorieTolerance

	switch {
	case calories < lower:
		return StatusUnder
	case calories > upper:
		return StatusOver
	default:
		return StatusOK
	}
}
