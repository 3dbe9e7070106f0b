package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/models"

	"gorm.io/gorm"
)

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

type SetInput struct {
	ExerciseName string
	Weight       float64
	Reps         int
	SetNumber    int
}

func (in SetInput) validate() error {
	if strings.TrimSpace(in.ExerciseName) == "" {
		return validationErr("exercise_name", "must not be empty")
	}
	if in.Reps <= 0 {
		return validationErr("reps", "must be positive")
	}
	if in.Weight < 0 {
		return validationErr("weight", "must not be negative")
	}
	return nil
}

// StartSession opens a new workout session. A zero start time means now.
func (s *WorkoutService) StartSession(ctx context.Context, userID uint, at time.Time) (*models.WorkoutSession, error) {
	if at.IsZero() {
		at = time.Now()
	}
	session := &models.WorkoutSession{
		UserID:    userID,
		Date:      dayStart(at),
		StartTime: at,
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// AddSet appends an exercise set to an open session owned by the requester.
func (s *WorkoutService) AddSet(ctx context.Context, sessionID, requesterID uint, in SetInput) (*models.ExerciseSet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := canModify(s.db.WithContext(ctx), requesterID, session.UserID); err != nil {
		return nil, err
	}

	setNumber := in.SetNumber
	if setNumber <= 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.ExerciseSet{}).
			Where("workout_session_id = ?", sessionID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		setNumber = int(count) + 1
	}

	set := &models.ExerciseSet{
		WorkoutSessionID: session.ID,
		ExerciseName:     strings.TrimSpace(in.ExerciseName),
		Weight:           in.Weight,
		Reps:             in.Reps,
		SetNumber:        setNumber,
	}
	if err := s.db.WithContext(ctx).Create(set).Error; err != nil {
		return nil, err
	}
	return set, nil
}

// FinishSession stamps the end time and duration on a session.
func (s *WorkoutService) FinishSession(ctx context.Context, sessionID, requesterID uint, durationSec int) (*models.WorkoutSession, error) {
	if durationSec < 0 {
		return nil, validationErr("duration", "must not be negative")
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := canModify(s.db.WithContext(ctx), requesterID, session.UserID); err != nil {
		return nil, err
	}

	now := time.Now()
	session.EndTime = &now
	if durationSec == 0 {
		durationSec = int(now.Sub(session.StartTime).Seconds())
	}
	session.DurationSec = durationSec
	if err := s.db.WithContext(ctx).Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (s *WorkoutService) ListByRange(ctx context.Context, userID uint, from, to time.Time) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := s.db.WithContext(ctx).
		Preload("Sets").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC, start_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (s *WorkoutService) ListAll(ctx context.Context, userID uint) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := s.db.WithContext(ctx).
		Preload("Sets").
		Where("user_id = ?", userID).
		Order("date DESC, start_time DESC").
		Find(&sessions).Error
	return sessions, err
}

// DeleteSession removes a session and its sets. Owner or admin only.
func (s *WorkoutService) DeleteSession(ctx context.Context, sessionID, requesterID uint) error {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := canModify(s.db.WithContext(ctx), requesterID, session.UserID); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).
		Where("workout_session_id = ?", session.ID).
		Delete(&models.ExerciseSet{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(session).Error
}

// DeleteSet removes a single set; ownership is checked via its session.
func (s *WorkoutService) DeleteSet(ctx context.Context, setID, requesterID uint) error {
	var set models.ExerciseSet
	if err := s.db.WithContext(ctx).First(&set, setID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	session, err := s.getSession(ctx, set.WorkoutSessionID)
	if err != nil {
		return err
	}
	if err := canModify(s.db.WithContext(ctx), requesterID, session.UserID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&set).Error
}

func (s *WorkoutService) getSession(ctx context.Context, sessionID uint) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	if err := s.db.WithContext(ctx).First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}
