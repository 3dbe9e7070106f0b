package services

import (
	"context"
	"errors"
	"log"

	"github.com/JamesPraneeth/fitness-tracker/models"
	"github.com/JamesPraneeth/fitness-tracker/utils"

	"gorm.io/gorm"
)

type AdminService struct{ db *gorm.DB }

func NewAdminService(db *gorm.DB) *AdminService { return &AdminService{db: db} }

type OverviewStats struct {
	Users           int64 `json:"users"`
	FoodLogs        int64 `json:"food_logs"`
	WorkoutSessions int64 `json:"workout_sessions"`
}

func (s *AdminService) Overview(ctx context.Context) (*OverviewStats, error) {
	out := &OverviewStats{}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&out.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.FoodLog{}).Count(&out.FoodLogs).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.WorkoutSession{}).Count(&out.WorkoutSessions).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Omit("password").
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (s *AdminService) SetAdmin(ctx context.Context, userID uint, isAdmin bool) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	user.IsAdmin = isAdmin
	return s.db.WithContext(ctx).Save(&user).Error
}

// EnsureAdmin creates the default admin account at startup if it does not
// exist yet.
func (s *AdminService) EnsureAdmin(ctx context.Context, email, password string) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.User{
		Email:         email,
		Password:      hashed,
		Name:          "Admin",
		Age:           30,
		Gender:        "male",
		Height:        175,
		Weight:        70,
		ActivityLevel: "moderate",
		Goal:          "maintain",
		IsAdmin:       true,
	}
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}
	log.Printf("Default admin user created: %s", email)
	return nil
}
