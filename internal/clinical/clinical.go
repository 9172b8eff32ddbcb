// Package clinical holds the pure intake calculations: body-mass index,
// BMI category, and calendar age.
package clinical

import (
	"math"
	"time"

	apperrors "github.com/jwalitptl/intake-api/pkg/errors"
)

// BMI category cutoffs, per WHO convention.
const (
	underweightBelow = 18.5
	overweightFrom   = 25.0
)

type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
)

// ComputeBMI returns weight (kg) divided by height (cm, converted to meters)
// squared, rounded to two decimal places.
func ComputeBMI(weight, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, apperrors.NewValidation("height must be greater than zero")
	}
	heightM := heightCm / 100
	return round2(weight / (heightM * heightM)), nil
}

// CategoryForBMI buckets a BMI value. The overweight cutoff is exclusive of
// values below 25 but includes 25.0 itself.
func CategoryForBMI(bmi float64) Category {
	switch {
	case bmi < underweightBelow:
		return CategoryUnderweight
	case bmi < overweightFrom:
		return CategoryNormal
	default:
		return CategoryOverweight
	}
}

// AgeYears returns the whole-year age at the given date, one less than the
// year difference when the birthday has not yet passed.
func AgeYears(dob, today time.Time) int {
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
