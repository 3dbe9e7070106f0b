package services

import (
	"context"
	"errors"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/models"
	"github.com/JamesPraneeth/fitness-tracker/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	goals *GoalService
}

func NewUserService(db *gorm.DB, goals *GoalService) *UserService {
	return &UserService{db: db, goals: goals}
}

func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

type SettingsInput struct {
	Weight        float64
	ActivityLevel string
	Goal          string
}

// UpdateSettings changes weight / activity level / goal and recomputes
// the macro targets, mirroring what a settings page submits.
func (s *UserService) UpdateSettings(ctx context.Context, userID uint, in SettingsInput) (*models.User, utils.MacroTargets, error) {
	if in.Weight <= 0 {
		return nil, utils.MacroTargets{}, validationErr("weight", "must be positive")
	}
	if !utils.ValidActivityLevel(in.ActivityLevel) {
		return nil, utils.MacroTargets{}, validationErr("activity_level", "unknown activity level")
	}
	if !utils.ValidGoal(in.Goal) {
		return nil, utils.MacroTargets{}, validationErr("goal", "must be lose, maintain or gain")
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, utils.MacroTargets{}, err
	}

	user.Weight = in.Weight
	user.ActivityLevel = in.ActivityLevel
	user.Goal = in.Goal
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, utils.MacroTargets{}, err
	}

	_, targets, err := s.goals.RecalculateFromProfile(ctx, user)
	if err != nil {
		return nil, utils.MacroTargets{}, err
	}
	return user, targets, nil
}

// LogBodyWeight records a weigh-in, updates the profile weight and
// recomputes the macro targets from the new weight.
func (s *UserService) LogBodyWeight(ctx context.Context, userID uint, weight float64, day time.Time) (*models.BodyWeightLog, error) {
	if weight <= 0 {
		return nil, validationErr("weight", "must be positive")
	}
	if day.IsZero() {
		day = time.Now()
	}

	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &models.BodyWeightLog{
		UserID: userID,
		Date:   dayStart(day),
		Weight: weight,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}

	user.Weight = weight
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	if _, _, err := s.goals.RecalculateFromProfile(ctx, user); err != nil && !IsValidation(err) {
		return nil, err
	}

	return entry, nil
}

func (s *UserService) ListBodyWeights(ctx context.Context, userID uint) ([]models.BodyWeightLog, error) {
	var logs []models.BodyWeightLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func (s *UserService) DeleteBodyWeight(ctx context.Context, logID, requesterID uint) error {
	var entry models.BodyWeightLog
	if err := s.db.WithContext(ctx).First(&entry, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := canModify(s.db.WithContext(ctx), requesterID, entry.UserID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&entry).Error
}

// Delete removes a user and everything they own. Deleting an account
// cascades rather than being blocked: gorm soft-deletes don't trigger the
// FK cascade, so owned rows are removed explicitly in one transaction.
func (s *UserService) Delete(ctx context.Context, targetID, requesterID uint) error {
	user, err := s.Get(ctx, targetID)
	if err != nil {
		return err
	}
	if err := canModify(s.db.WithContext(ctx), requesterID, targetID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sessionIDs []uint
		if err := tx.Model(&models.WorkoutSession{}).
			Where("user_id = ?", targetID).
			Pluck("id", &sessionIDs).Error; err != nil {
			return err
		}
		if len(sessionIDs) > 0 {
			if err := tx.Where("workout_session_id IN ?", sessionIDs).
				Delete(&models.ExerciseSet{}).Error; err != nil {
				return err
			}
		}
		for _, m := range []any{
			&models.WorkoutSession{},
			&models.FoodLog{},
			&models.BodyWeightLog{},
			&models.MacroGoal{},
		} {
			if err := tx.Where("user_id = ?", targetID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(user).Error
	})
}
