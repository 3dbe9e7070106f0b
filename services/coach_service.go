package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/models"

	"gorm.io/gorm"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// FallbackTips is served when the coach provider is unavailable so the
// dashboard never fails because of it.
var FallbackTips = []string{
	"Track your daily nutrition consistently.",
	"Maintain regular workout schedule.",
	"Get 7-8 hours of sleep for recovery.",
}

type CoachService struct {
	db      *gorm.DB
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewCoachService(db *gorm.DB) *CoachService {
	baseURL := os.Getenv("GEMINI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &CoachService{
		db:      db,
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   "gemini-2.5-flash",
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt to the text-generation provider and returns
// the raw text of the first candidate. Any transport, status or decode
// failure wraps ErrUpstream. Single request/response, no retries.
func (s *CoachService) generate(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY not set", ErrUpstream)
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: provider returned status %d: %s", ErrUpstream, resp.StatusCode, string(respBytes))
	}

	var out geminiResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}

// Recommendations builds a prompt from the user's profile, goals and
// last-week averages, and asks the provider for exactly three tips.
func (s *CoachService) Recommendations(ctx context.Context, userID uint) ([]string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var goal models.MacroGoal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	today := time.Now()
	weekAgo := today.AddDate(0, 0, -7)

	var foods []models.FoodLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, dayStart(weekAgo)).
		Find(&foods).Error; err != nil {
		return nil, err
	}

	var avgCalories, avgProtein float64
	if len(foods) > 0 {
		days := map[string]struct{}{}
		for _, f := range foods {
			days[f.Date.Format("2006-01-02")] = struct{}{}
			avgCalories += f.Calories
			avgProtein += f.Protein
		}
		n := float64(len(days))
		avgCalories /= n
		avgProtein /= n
	}

	var workoutCount int64
	if err := s.db.WithContext(ctx).Model(&models.WorkoutSession{}).
		Where("user_id = ? AND date >= ?", userID, dayStart(weekAgo)).
		Count(&workoutCount).Error; err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are a fitness coach. Give 3 personalized tips.

User: %dyr old %s, %.0fcm, %.0fkg
Goals: %.0fcal/day, %.0fg protein/day
Last week: %dcal/day avg, %dg protein/day avg, %d workouts

Return JSON only:
{
  "recommendations": ["tip 1", "tip 2", "tip 3"]
}`,
		user.Age, user.Gender, user.Height, user.Weight,
		goal.Calories, goal.Protein,
		int(avgCalories), int(avgProtein), workoutCount,
	)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: unparseable recommendations: %v", ErrUpstream, err)
	}
	if len(parsed.Recommendations) < 3 {
		return nil, fmt.Errorf("%w: expected 3 recommendations, got %d", ErrUpstream, len(parsed.Recommendations))
	}
	return parsed.Recommendations[:3], nil
}

// Ask forwards a free-text question together with the day's summary and
// returns the provider's answer verbatim.
func (s *CoachService) Ask(ctx context.Context, sum *Summary, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", validationErr("question", "must not be empty")
	}

	prompt := fmt.Sprintf(`You are a fitness coach. Today the user logged:
- %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fats
- %d sets, %d reps, %.0f total training volume (reps x weight)

The user asks: %s

Answer in a short, encouraging paragraph.`,
		sum.Calories, sum.Protein, sum.Carbs, sum.Fats,
		sum.Sets, sum.Reps, sum.Volume,
		strings.TrimSpace(question),
	)

	return s.generate(ctx, prompt)
}

// stripCodeFences unwraps ```json ... ``` style fences some models wrap
// around JSON output.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "```json"); i >= 0 {
		text = text[i+len("```json"):]
	} else if i := strings.Index(text, "```"); i >= 0 {
		text = text[i+len("```"):]
	} else {
		return text
	}
	if i := strings.Index(text, "```"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
