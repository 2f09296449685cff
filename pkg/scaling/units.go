package scaling

// allowedUnits is the fixed unit enumeration recipes may use. Read-only
// reference data, never mutated at runtime.
var allowedUnits = map[string]bool{
	"cups":   true,
	"tbsp":   true,
	"tsp":    true,
	"lbs":    true,
	"oz":     true,
	"grams":  true,
	"kg":     true,
	"pieces": true,
	"cloves": true,
	"ml":     true,
	"liters": true,
	"bunch":  true,
	"pinch":  true,
	"slices": true,
	"cans":   true,
}

func IsValidUnit(unit string) bool {
	return allowedUnits[unit]
}

// Units returns the unit enumeration as a slice, for validation messages
// and seed tooling.
func Units() []string {
	units := make([]string, 0, len(allowedUnits))
	for u := range allowedUnits {
		units = append(units, u)
	}
	return units
}
