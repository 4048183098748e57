package body

import (
	"fmt"
	"math"
)

// Input bounds for callers that accept BodyStats from users. ComputeMetrics
// and the scaling model do not apply them.
const (
	MinHeightCM = 100.0
	MaxHeightCM = 230.0
	MinWeightKG = 30.0
	MaxWeightKG = 250.0
	MinAge      = 10
	MaxAge      = 95
)

func ValidateHeight(v float64) error {
	if math.IsNaN(v) || v < MinHeightCM || v > MaxHeightCM {
		return fmt.Errorf("height_cm must be between %.0f and %.0f", MinHeightCM, MaxHeightCM)
	}
	return nil
}

func ValidateWeight(v float64) error {
	if math.IsNaN(v) || v < MinWeightKG || v > MaxWeightKG {
		return fmt.Errorf("weight_kg must be between %.0f and %.0f", MinWeightKG, MaxWeightKG)
	}
	return nil
}

func ValidateAge(v int) error {
	if v < MinAge || v > MaxAge {
		return fmt.Errorf("age must be between %d and %d", MinAge, MaxAge)
	}
	return nil
}

// Validate checks every field of s against the input bounds and reports the
// first failure.
func (s BodyStats) Validate() error {
	if err := ValidateHeight(s.HeightCM); err != nil {
		return err
	}
	if err := ValidateWeight(s.WeightKG); err != nil {
		return err
	}
	if err := ValidateAge(s.Age); err != nil {
		return err
	}
	if s.Sex != Male && s.Sex != Female {
		return fmt.Errorf("%w: %q", ErrUnknownSex, s.Sex)
	}
	return nil
}
