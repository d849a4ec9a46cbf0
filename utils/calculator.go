package utils

import (
	"errors"
	"strings"
)

// Activity multipliers applied to BMR (Mifflin-St Jeor).
var activityMultipliers = map[string]float64{
	"light":    1.375,
	"moderate": 1.55,
	"heavy":    1.725,
}

// Daily macronutrient split: 55% carbohydrates, 20% protein, 25% fat,
// at 4/4/9 kcal per gram.
const (
	carbCalorieShare    = 0.55
	proteinCalorieShare = 0.20
	fatCalorieShare     = 0.25

	kcalPerGramCarb    = 4.0
	kcalPerGramProtein = 4.0
	kcalPerGramFat     = 9.0
)

// CalculateBMR expects weight in kilograms, height in centimeters and age in
// years. Gender is "male" or "female".
func CalculateBMR(weightKg, heightCm, age float64, gender string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, errors.New("weight, height and age must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 || age > 130 {
		return 0, errors.New("weight/height/age out of plausible range")
	}

	base := 10*weightKg + 6.25*heightCm - 5*age
	switch strings.ToLower(gender) {
	case "male":
		return base + 5, nil
	case "female":
		return base - 161, nil
	default:
		return 0, errors.New("gender must be 'male' or 'female'")
	}
}

// CalculateTDEE scales BMR by the activity level: "light", "moderate" or
// "heavy".
func CalculateTDEE(bmr float64, activityLevel string) (float64, error) {
	m, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		return 0, errors.New("activity level must be 'light', 'moderate' or 'heavy'")
	}
	return bmr * m, nil
}

// MacroTargets converts a daily energy budget into gram targets.
func MacroTargets(tdee float64) (carbsG, proteinG, fatG float64) {
	carbsG = tdee * carbCalorieShare / kcalPerGramCarb
	proteinG = tdee * proteinCalorieShare / kcalPerGramProtein
	fatG = tdee * fatCalorieShare / kcalPerGramFat
	return carbsG, proteinG, fatG
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
