package utils

import (
	"errors"
	"math"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth for valid activity levels — also used for input
// validation in the settings endpoint.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// goalAdjustments is the daily calorie delta applied on top of TDEE.
var goalAdjustments = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     300,
}

// proteinMultipliers is grams of protein per kg of body weight, per goal.
var proteinMultipliers = map[string]float64{
	"lose":     2.4,
	"maintain": 2.0,
	"gain":     2.2,
}

func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

func ValidGoal(goal string) bool {
	_, ok := goalAdjustments[goal]
	return ok
}

type MacroTargets struct {
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// CalculateMacros derives daily macro targets from a user profile.
// BMR via Mifflin-St Jeor (weight kg, height cm), TDEE via activity
// multiplier, calories adjusted per goal, protein per kg of body weight,
// fats as 25% of calories (9 kcal/g), carbs from the remaining calories
// (4 kcal/g). Unknown activity levels and goals fall back to
// "moderate"/"maintain" rather than failing.
func CalculateMacros(weightKg, heightCm float64, age int, gender, activityLevel, goal string) (MacroTargets, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return MacroTargets{}, errors.New("weight, height and age must be positive")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers["moderate"]
	}
	tdee := bmr * mult

	adj, ok := goalAdjustments[goal]
	if !ok {
		adj = 0
	}
	calories := tdee + adj

	pmult, ok := proteinMultipliers[goal]
	if !ok {
		pmult = proteinMultipliers["maintain"]
	}
	protein := weightKg * pmult
	fats := (calories * 0.25) / 9

	remaining := calories - protein*4 - fats*9
	carbs := remaining / 4
	if carbs < 0 {
		carbs = 0
	}

	return MacroTargets{
		BMR:      math.Round(bmr),
		TDEE:     math.Round(tdee),
		Calories: math.Round(calories),
		Protein:  round1(protein),
		Carbs:    round1(carbs),
		Fats:     round1(fats),
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
