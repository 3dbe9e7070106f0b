package services

import (
	"context"
	"errors"

	"github.com/JamesPraneeth/fitness-tracker/models"
	"github.com/JamesPraneeth/fitness-tracker/utils"

	"gorm.io/gorm"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

type GoalInput struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

func (in GoalInput) validate() error {
	for field, v := range map[string]float64{
		"calories": in.Calories,
		"protein":  in.Protein,
		"carbs":    in.Carbs,
		"fats":     in.Fats,
	} {
		if v < 0 {
			return validationErr(field, "must not be negative")
		}
	}
	return nil
}

// GetOrCreate returns the user's macro goal, lazily creating an unset one
// on first access.
func (s *GoalService) GetOrCreate(ctx context.Context, userID uint) (*models.MacroGoal, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	goal := models.MacroGoal{UserID: userID}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// Update overwrites the user's targets with explicit values.
func (s *GoalService) Update(ctx context.Context, userID uint, in GoalInput) (*models.MacroGoal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	goal, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	goal.Calories = in.Calories
	goal.Protein = in.Protein
	goal.Carbs = in.Carbs
	goal.Fats = in.Fats
	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// RecalculateFromProfile derives targets from the user's body stats and
// stores them. Called on registration and whenever the profile changes in
// a way that moves the numbers (weight, activity level, goal).
func (s *GoalService) RecalculateFromProfile(ctx context.Context, user *models.User) (*models.MacroGoal, utils.MacroTargets, error) {
	targets, err := utils.CalculateMacros(
		user.Weight, user.Height, user.Age,
		user.Gender, user.ActivityLevel, user.Goal,
	)
	if err != nil {
		return nil, utils.MacroTargets{}, validationErr("profile", err.Error())
	}

	goal, err := s.Update(ctx, user.ID, GoalInput{
		Calories: targets.Calories,
		Protein:  targets.Protein,
		Carbs:    targets.Carbs,
		Fats:     targets.Fats,
	})
	if err != nil {
		return nil, utils.MacroTargets{}, err
	}
	return goal, targets, nil
}
