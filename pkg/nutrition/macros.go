package nutrition

const (
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

const (
	WarnLowProtein = "low protein"
	WarnLowFat     = "low fat"
	WarnHighFat    = "high fat"
	WarnLowCarbs   = "low carbs"
	WarnHighCarbs  = "high carbs"
)

// MacroWarnings checks the calorie share of each macro (in grams) against a
// balanced diet: protein at least 15%, fat 25-35%, carbs 50-55%.
func MacroWarnings(proteins, fats, carbs float64) []string {
	p := proteins * kcalPerGramProtein
	f := fats * kcalPerGramFat
	c := carbs * kcalPerGramCarb
	total := p + f + c
	if total <= 0 {
		return nil
	}

	pPct, fPct, cPct := p/total*100, f/total*100, c/total*100

	var warnings []string
	if pPct < 15 {
		warnings = append(warnings, WarnLowProtein)
	}
	if fPct < 25 {
		warnings = append(warnings, WarnLowFat)
	}
	if fPct > 35 {
		warnings = append(warnings, WarnHighFat)
	}
	if cPct < 50 {
		warnings = append(warnings, WarnLowCarbs)
	}
	if cPct > 55 {
		warnings = append(warnings, WarnHighCarbs)
	}
	return warnings
}
