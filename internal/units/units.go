// Package units provides shared constants and conversion for speed units.
package units

// Unit constants
const (
	KPH = "kph"
	MPH = "mph"
	MPS = "mps"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{KPH, MPH, MPS}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// ValidUnitsString returns a comma-separated string of valid units for error messages
func ValidUnitsString() string {
	return "kph, mph, mps"
}

// ConvertSpeed converts a speed from kilometres per hour, the unit of
// the VBO velocity channel, to the target units.
func ConvertSpeed(speedKPH float64, targetUnits string) float64 {
	switch targetUnits {
	case MPH:
		return speedKPH / 1.609344
	case MPS:
		return speedKPH / 3.6
	case KPH:
		return speedKPH
	default:
		return speedKPH
	}
}
