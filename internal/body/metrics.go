package body

import "math"

// Band is one row of the BMI category table. Both ends are inclusive.
type Band struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Bands is checked in order and the first containing band wins. The rows
// overlap at 18.5 and leave gaps between 24.9/25 and 29.9/30; a BMI that
// falls in a gap (or above 100) matches nothing and takes the last row.
var Bands = []Band{
	{Label: "Underweight", Min: 0, Max: 18.5},
	{Label: "Normal", Min: 18.5, Max: 24.9},
	{Label: "Overweight", Min: 25, Max: 29.9},
	{Label: "Obese", Min: 30, Max: 100},
}

const (
	// bodyFatFloor is the lowest body-fat percentage ever reported.
	bodyFatFloor = 2.0

	idealBMILow  = 18.5
	idealBMIHigh = 24.9
)

// HealthMetrics is derived from BodyStats on every change; it has no identity.
type HealthMetrics struct {
	BMI              float64    `json:"bmi" yaml:"bmi"`
	Category         string     `json:"category" yaml:"category"`
	BodyFatEstimate  float64    `json:"body_fat_estimate" yaml:"body_fat_estimate"`
	IdealWeightRange [2]float64 `json:"ideal_weight_range" yaml:"ideal_weight_range"`
}

// BMI returns weight / height_m². Height must be non-zero.
func BMI(heightCM, weightKG float64) float64 {
	h := heightCM / 100
	return weightKG / (h * h)
}

// CategoryFor returns the label of the first band containing bmi.
func CategoryFor(bmi float64) string {
	for _, b := range Bands {
		if bmi >= b.Min && bmi <= b.Max {
			return b.Label
		}
	}
	return Bands[len(Bands)-1].Label
}

// ComputeMetrics derives BMI, category, a Deurenberg-style body-fat estimate,
// and the ideal weight range for s.
func ComputeMetrics(s BodyStats) HealthMetrics {
	heightM := s.HeightCM / 100
	bmi := BMI(s.HeightCM, s.WeightKG)

	sexFactor := 0.0
	if s.Sex == Male {
		sexFactor = 1
	}
	bodyFat := (1.20 * bmi) + (0.23 * float64(s.Age)) - (10.8 * sexFactor) - 5.4

	return HealthMetrics{
		BMI:              bmi,
		Category:         CategoryFor(bmi),
		BodyFatEstimate:  math.Max(bodyFatFloor, bodyFat),
		IdealWeightRange: [2]float64{
			math.Round(idealBMILow * heightM * heightM),
			math.Round(idealBMIHigh * heightM * heightM),
		},
	}
}
