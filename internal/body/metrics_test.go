package body

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSex(t *testing.T) {
	s, err := ParseSex(" Female ")
	require.NoError(t, err)
	assert.Equal(t, Female, s)

	s, err = ParseSex("male")
	require.NoError(t, err)
	assert.Equal(t, Male, s)

	_, err = ParseSex("other")
	assert.ErrorIs(t, err, ErrUnknownSex)
}

func TestBMI(t *testing.T) {
	assert.InDelta(t, 23.51, BMI(175, 72), 0.01)
	assert.Equal(t, 72/(1.75*1.75), BMI(175, 72))
}

func TestCategoryFor(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{10, "Underweight"},
		// 18.5 sits in both the first and second rows; the first wins.
		{18.5, "Underweight"},
		{18.6, "Normal"},
		{24.9, "Normal"},
		// Gap between 24.9 and 25 matches nothing and falls through.
		{24.95, "Obese"},
		{25, "Overweight"},
		{29.9, "Overweight"},
		{29.95, "Obese"},
		{30, "Obese"},
		{100, "Obese"},
		{150, "Obese"},
		{-1, "Obese"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CategoryFor(tc.bmi), "bmi=%v", tc.bmi)
	}
}

func TestComputeMetrics_Defaults(t *testing.T) {
	m := ComputeMetrics(BodyStats{HeightCM: 175, WeightKG: 72, Sex: Male, Age: 28})

	assert.InDelta(t, 23.51, m.BMI, 0.01)
	assert.Equal(t, "Normal", m.Category)
	assert.Equal(t, [2]float64{57, 76}, m.IdealWeightRange)

	want := 1.20*m.BMI + 0.23*28 - 10.8 - 5.4
	assert.InDelta(t, want, m.BodyFatEstimate, 1e-9)
}

func TestComputeMetrics_FemaleBodyFat(t *testing.T) {
	m := ComputeMetrics(BodyStats{HeightCM: 165, WeightKG: 60, Sex: Female, Age: 35})
	want := 1.20*BMI(165, 60) + 0.23*35 - 5.4
	assert.InDelta(t, want, m.BodyFatEstimate, 1e-9)
}

func TestComputeMetrics_BodyFatFloor(t *testing.T) {
	// 230cm / 30kg gives a BMI near 5.7; the raw estimate is negative for a young male.
	m := ComputeMetrics(BodyStats{HeightCM: 230, WeightKG: 30, Sex: Male, Age: 10})
	assert.Equal(t, 2.0, m.BodyFatEstimate)
	assert.Equal(t, "Underweight", m.Category)
}

func TestComputeMetrics_IdealRangeRounding(t *testing.T) {
	m := ComputeMetrics(BodyStats{HeightCM: 160, WeightKG: 55, Sex: Female, Age: 40})
	assert.Equal(t, math.Round(18.5*1.6*1.6), m.IdealWeightRange[0])
	assert.Equal(t, math.Round(24.9*1.6*1.6), m.IdealWeightRange[1])
	assert.Equal(t, 47.0, m.IdealWeightRange[0])
	assert.Equal(t, 64.0, m.IdealWeightRange[1])
}

func TestComputeMetrics_Idempotent(t *testing.T) {
	s := BodyStats{HeightCM: 181.5, WeightKG: 93.2, Sex: Male, Age: 51}
	assert.Equal(t, ComputeMetrics(s), ComputeMetrics(s))
}
