package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMR(t *testing.T) {
	t.Run("Male", func(t *testing.T) {
		bmr, err := CalculateBMR(70, 175, 25, "male")
		require.NoError(t, err)
		assert.InDelta(t, 1673.75, bmr, 1e-9)
	})

	t.Run("Female", func(t *testing.T) {
		bmr, err := CalculateBMR(70, 175, 25, "Female")
		require.NoError(t, err)
		assert.InDelta(t, 1507.75, bmr, 1e-9)
	})

	t.Run("InvalidGender", func(t *testing.T) {
		_, err := CalculateBMR(70, 175, 25, "other")
		assert.Error(t, err)
	})

	t.Run("NonPositiveInput", func(t *testing.T) {
		_, err := CalculateBMR(0, 175, 25, "male")
		assert.Error(t, err)
	})

	t.Run("ImplausibleInput", func(t *testing.T) {
		_, err := CalculateBMR(900, 175, 25, "male")
		assert.Error(t, err)
	})
}

func TestCalculateTDEE(t *testing.T) {
	bmr := 1600.0

	for level, want := range map[string]float64{
		"light":    2200,
		"moderate": 2480,
		"heavy":    2760,
	} {
		tdee, err := CalculateTDEE(bmr, level)
		require.NoError(t, err)
		assert.InDelta(t, want, tdee, 1e-9, level)
	}

	_, err := CalculateTDEE(bmr, "sedentary")
	assert.Error(t, err)
}

func TestMacroTargets(t *testing.T) {
	carbs, protein, fat := MacroTargets(2000)
	assert.InDelta(t, 275.0, carbs, 1e-9)
	assert.InDelta(t, 100.0, protein, 1e-9)
	assert.InDelta(t, 2000*0.25/9, fat, 1e-9)
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, bmi, 1e-3)
	assert.Equal(t, "Normal weight", BMICategory(bmi))

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)

	assert.Equal(t, "Underweight", BMICategory(17))
	assert.Equal(t, "Obesity class III", BMICategory(45))
}
