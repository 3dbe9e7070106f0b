package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/JamesPraneeth/fitness-tracker/models"
	"github.com/JamesPraneeth/fitness-tracker/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db    *gorm.DB
	goals *GoalService
}

func NewAuthService(db *gorm.DB, goals *GoalService) *AuthService {
	return &AuthService{db: db, goals: goals}
}

type RegisterInput struct {
	Email         string
	Password      string
	Name          string
	Age           int
	Gender        string
	Height        float64
	Weight        float64
	ActivityLevel string
	Goal          string
}

// Register creates the user and computes their initial macro goal from
// the profile.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, validationErr("email", "already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:         email,
		Password:      hashed,
		Name:          in.Name,
		Age:           in.Age,
		Gender:        in.Gender,
		Height:        in.Height,
		Weight:        in.Weight,
		ActivityLevel: in.ActivityLevel,
		Goal:          in.Goal,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	if _, _, err := s.goals.RecalculateFromProfile(ctx, user); err != nil {
		// Registration still succeeds with an unset goal; the user can
		// fill in the profile later via settings.
		log.Printf("macro goal not computed for %s: %v", user.Email, err)
	}

	return user, nil
}

// Authenticate checks credentials and issues a JWT.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
