package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/models"

	"gorm.io/gorm"
)

type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService { return &SummaryService{db: db} }

// Summary is the computed aggregate of a user's logged entries over a
// date range: nutrition totals from food logs, set/rep/volume totals
// from workout sessions.
type Summary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Volume   float64 `json:"volume"` // Σ reps × weight over all sets
}

// MacroProgress compares one macro against its goal. Percent is nil when
// the goal is unset (zero) — percentage of nothing is undefined, not an
// error.
type MacroProgress struct {
	Actual  float64  `json:"actual"`
	Goal    float64  `json:"goal"`
	Delta   float64  `json:"delta"` // actual - goal
	Percent *float64 `json:"percent"`
}

type GoalComparison struct {
	Calories MacroProgress `json:"calories"`
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fats     MacroProgress `json:"fats"`
}

// DailySummary aggregates a single day. A zero day defaults to today.
func (s *SummaryService) DailySummary(ctx context.Context, userID uint, day time.Time) (*Summary, error) {
	if day.IsZero() {
		day = time.Now()
	}
	return s.RangeSummary(ctx, userID, day, day)
}

// RangeSummary aggregates the inclusive date range [from, to]. The range
// is normalized to whole days. An unknown user is an error; a range with
// no entries yields an all-zero summary.
func (s *SummaryService) RangeSummary(ctx context.Context, userID uint, from, to time.Time) (*Summary, error) {
	if from.IsZero() {
		from = time.Now()
	}
	if to.IsZero() {
		to = from
	}
	if dayStart(to).Before(dayStart(from)) {
		return nil, validationErr("range", "end date before start date")
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out := &Summary{}

	var foods []models.FoodLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Find(&foods).Error; err != nil {
		return nil, err
	}
	for _, f := range foods {
		out.Calories += f.Calories
		out.Protein += f.Protein
		out.Carbs += f.Carbs
		out.Fats += f.Fats
	}

	var sessions []models.WorkoutSession
	if err := s.db.WithContext(ctx).
		Preload("Sets").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		for _, set := range sess.Sets {
			out.Sets++
			out.Reps += set.Reps
			out.Volume += float64(set.Reps) * set.Weight
		}
	}

	return out, nil
}

// CompareToGoal produces per-macro deltas and percentage-of-goal for a
// summary against the user's stored goal. Pure computation, no reads.
func CompareToGoal(sum *Summary, goal *models.MacroGoal) GoalComparison {
	return GoalComparison{
		Calories: macroProgress(sum.Calories, goal.Calories),
		Protein:  macroProgress(sum.Protein, goal.Protein),
		Carbs:    macroProgress(sum.Carbs, goal.Carbs),
		Fats:     macroProgress(sum.Fats, goal.Fats),
	}
}

func macroProgress(actual, goal float64) MacroProgress {
	p := MacroProgress{
		Actual: actual,
		Goal:   goal,
		Delta:  actual - goal,
	}
	if goal > 0 {
		pct := round2((actual / goal) * 100.0)
		p.Percent = &pct
	}
	return p
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
