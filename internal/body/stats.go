// Package body holds the biometric calculator and the anthropometric scaling
// model shared by the 2D and 3D renderers. Everything here is pure: no I/O,
// no shared state, safe to call from any number of goroutines.
package body

import (
	"errors"
	"fmt"
	"strings"
)

// Sex selects the per-sex coefficients in every table.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ErrUnknownSex is returned by ParseSex for anything other than male/female.
var ErrUnknownSex = errors.New("unknown sex")

// ParseSex accepts "male" or "female" (case-insensitive, surrounding space ignored).
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

// BodyStats is one set of user inputs. Height is in centimeters, weight in
// kilograms. Bounds are enforced by callers, not here.
type BodyStats struct {
	HeightCM float64 `json:"height_cm" yaml:"height_cm"`
	WeightKG float64 `json:"weight_kg" yaml:"weight_kg"`
	Sex      Sex     `json:"sex" yaml:"sex"`
	Age      int     `json:"age" yaml:"age"`
}
