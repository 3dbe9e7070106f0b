package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodInput struct {
	Name     string
	Date     time.Time // zero means today
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

func (in FoodInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationErr("name", "must not be empty")
	}
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

func (s *FoodService) Log(ctx context.Context, userID uint, in FoodInput) (*models.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	day := in.Date
	if day.IsZero() {
		day = time.Now()
	}

	entry := &models.FoodLog{
		UserID:   userID,
		Date:     dayStart(day),
		Name:     strings.TrimSpace(in.Name),
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FoodService) ListByDate(ctx context.Context, userID uint, day time.Time) ([]models.FoodLog, error) {
	return s.ListByRange(ctx, userID, day, day)
}

func (s *FoodService) ListByRange(ctx context.Context, userID uint, from, to time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC, created_at ASC").
		Find(&logs).Error
	return logs, err
}

// Update rewrites an existing entry. Only the owner or an admin may edit.
func (s *FoodService) Update(ctx context.Context, logID, requesterID uint, in FoodInput) (*models.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var entry models.FoodLog
	if err := s.db.WithContext(ctx).First(&entry, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := canModify(s.db.WithContext(ctx), requesterID, entry.UserID); err != nil {
		return nil, err
	}

	entry.Name = strings.TrimSpace(in.Name)
	entry.Calories = in.Calories
	entry.Protein = in.Protein
	entry.Carbs = in.Carbs
	entry.Fats = in.Fats
	if !in.Date.IsZero() {
		entry.Date = dayStart(in.Date)
	}
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes an entry. Only the owner or an admin may delete.
func (s *FoodService) Delete(ctx context.Context, logID, requesterID uint) error {
	var entry models.FoodLog
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
