package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMacros_MifflinStJeor(t *testing.T) {
	// Male, 70kg, 175cm, 30yr: BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	got, err := CalculateMacros(70, 175, 30, "male", "moderate", "maintain")
	require.NoError(t, err)
	assert.Equal(t, 1649.0, got.BMR)
	// TDEE = 1648.75 * 1.55 = 2555.5625
	assert.Equal(t, 2556.0, got.TDEE)
	assert.Equal(t, got.TDEE, got.Calories) // maintain adds nothing
	assert.Equal(t, 140.0, got.Protein)     // 70kg * 2.0
}

func TestCalculateMacros_FemaleConstant(t *testing.T) {
	male, err := CalculateMacros(60, 165, 25, "male", "sedentary", "maintain")
	require.NoError(t, err)
	female, err := CalculateMacros(60, 165, 25, "female", "sedentary", "maintain")
	require.NoError(t, err)
	// Mifflin-St Jeor: +5 for male, -161 for female — 166 kcal of BMR apart.
	assert.InDelta(t, 166.0, male.BMR-female.BMR, 1.0)
}

func TestCalculateMacros_GoalAdjustments(t *testing.T) {
	maintain, err := CalculateMacros(80, 180, 35, "male", "moderate", "maintain")
	require.NoError(t, err)
	lose, err := CalculateMacros(80, 180, 35, "male", "moderate", "lose")
	require.NoError(t, err)
	gain, err := CalculateMacros(80, 180, 35, "male", "moderate", "gain")
	require.NoError(t, err)

	assert.Equal(t, maintain.Calories-500, lose.Calories)
	assert.Equal(t, maintain.Calories+300, gain.Calories)

	// Protein per kg shifts with the goal: 2.4 lose, 2.0 maintain, 2.2 gain.
	assert.Equal(t, 192.0, lose.Protein)
	assert.Equal(t, 160.0, maintain.Protein)
	assert.Equal(t, 176.0, gain.Protein)
}

func TestCalculateMacros_MacroEnergyAddsUp(t *testing.T) {
	got, err := CalculateMacros(75, 178, 28, "male", "active", "maintain")
	require.NoError(t, err)
	// protein*4 + carbs*4 + fats*9 should reconstruct the calorie target
	// (within rounding).
	total := got.Protein*4 + got.Carbs*4 + got.Fats*9
	assert.InDelta(t, got.Calories, total, 5.0)
}

func TestCalculateMacros_UnknownLevelsFallBack(t *testing.T) {
	base, err := CalculateMacros(70, 175, 30, "male", "moderate", "maintain")
	require.NoError(t, err)
	odd, err := CalculateMacros(70, 175, 30, "male", "couch", "unknown")
	require.NoError(t, err)
	assert.Equal(t, base.Calories, odd.Calories)
}

func TestCalculateMacros_RejectsNonPositiveProfile(t *testing.T) {
	cases := []struct {
		name            string
		weight, height  float64
		age             int
	}{
		{"zero weight", 0, 175, 30},
		{"zero height", 70, 0, 30},
		{"zero age", 70, 175, 0},
		{"negative weight", -70, 175, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateMacros(tc.weight, tc.height, tc.age, "male", "moderate", "maintain")
			assert.Error(t, err)
		})
	}
}

func TestValidActivityLevelAndGoal(t *testing.T) {
	assert.True(t, ValidActivityLevel("sedentary"))
	assert.True(t, ValidActivityLevel("very_active"))
	assert.False(t, ValidActivityLevel("heroic"))

	assert.True(t, ValidGoal("lose"))
	assert.True(t, ValidGoal("gain"))
	assert.False(t, ValidGoal("bulk"))
}
