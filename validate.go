package main

import (
	"errors"

	"lg/bodyviz-api/internal/body"
)

// views maps the 2D view names accepted by the API to their scale target.
var views = map[string]body.Target{
	"front": body.Target2DFront,
	"side":  body.Target2DSide,
}

var visuals = map[string]bool{"2d": true, "3d": true}

func validateSex(v string) (body.Sex, error) {
	s, err := body.ParseSex(v)
	if err != nil {
		return "", errors.New("sex must be one of: male, female")
	}
	return s, nil
}

// toStats validates r and converts it. The first failing field is reported.
func (r bodyStatsRequest) toStats() (body.BodyStats, error) {
	if err := body.ValidateHeight(r.HeightCM); err != nil {
		return body.BodyStats{}, err
	}
	if err := body.ValidateWeight(r.WeightKG); err != nil {
		return body.BodyStats{}, err
	}
	if err := body.ValidateAge(r.Age); err != nil {
		return body.BodyStats{}, err
	}
	sex, err := validateSex(r.Sex)
	if err != nil {
		return body.BodyStats{}, err
	}
	return body.BodyStats{HeightCM: r.HeightCM, WeightKG: r.WeightKG, Sex: sex, Age: r.Age}, nil
}

// resolveTarget picks the scale target for a visual/view pair. Empty values
// default to the 2D front view.
func resolveTarget(visual, view string) (body.Target, error) {
	if visual == "" {
		visual = "2d"
	}
	if !visuals[visual] {
		return "", errors.New("visual must be one of: 2d, 3d")
	}
	if visual == "3d" {
		return body.Target3D, nil
	}
	if view == "" {
		view = "front"
	}
	t, ok := views[view]
	if !ok {
		return "", errors.New("view must be one of: front, side")
	}
	return t, nil
}
