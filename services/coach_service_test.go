package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newMockCoach returns a CoachService pointed at a mock provider and a
// setter for the next mock response, in the shape of the generateContent
// API (candidates[0].content.parts[0].text).
func newMockCoach(t *testing.T, db *gorm.DB) (*CoachService, func(status int, text string)) {
	t.Helper()

	var mockStatus int
	var mockText string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(mockStatus)
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": mockText}}}},
			},
		})
	}))
	t.Cleanup(server.Close)

	svc := &CoachService{
		db:      db,
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: server.URL,
		apiKey:  "test-key",
		model:   "gemini-2.5-flash",
	}
	return svc, func(status int, text string) {
		mockStatus = status
		mockText = text
	}
}

func TestCoachRecommendations_Success(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "coached@test.com", false)
	require.NoError(t, db.Create(&models.MacroGoal{UserID: user.ID, Calories: 2000, Protein: 150}).Error)

	svc, setMock := newMockCoach(t, db)
	setMock(http.StatusOK, `{"recommendations": ["eat more protein", "sleep more", "add a rest day"]}`)

	recs, err := svc.Recommendations(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"eat more protein", "sleep more", "add a rest day"}, recs)
}

func TestCoachRecommendations_FencedJSON(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "fenced@test.com", false)

	svc, setMock := newMockCoach(t, db)
	setMock(http.StatusOK, "```json\n{\"recommendations\": [\"a\", \"b\", \"c\", \"d\"]}\n```")

	recs, err := svc.Recommendations(context.Background(), user.ID)
	require.NoError(t, err)
	// Only the first three tips are kept.
	assert.Equal(t, []string{"a", "b", "c"}, recs)
}

func TestCoachRecommendations_UpstreamError(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "down@test.com", false)

	svc, setMock := newMockCoach(t, db)
	setMock(http.StatusInternalServerError, "")

	_, err := svc.Recommendations(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCoachRecommendations_TooFewTips(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "short@test.com", false)

	svc, setMock := newMockCoach(t, db)
	setMock(http.StatusOK, `{"recommendations": ["only one"]}`)

	_, err := svc.Recommendations(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCoachRecommendations_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc, setMock := newMockCoach(t, db)
	setMock(http.StatusOK, `{"recommendations": ["a", "b", "c"]}`)

	_, err := svc.Recommendations(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCoachRecommendations_MissingAPIKey(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "nokey@test.com", false)

	svc, _ := newMockCoach(t, db)
	svc.apiKey = ""

	_, err := svc.Recommendations(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCoachAsk_VerbatimAnswer(t *testing.T) {
	db := newTestDB(t)
	svc, setMock := newMockCoach(t, db)
	setMock(http.StatusOK, "You're doing great — keep the protein up!")

	answer, err := svc.Ask(context.Background(), &Summary{Calories: 1800, Protein: 120}, "how am I doing?")
	require.NoError(t, err)
	assert.Equal(t, "You're doing great — keep the protein up!", answer)
}

func TestCoachAsk_EmptyQuestion(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newMockCoach(t, db)

	_, err := svc.Ask(context.Background(), &Summary{}, "   ")
	assert.True(t, IsValidation(err))
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", "Here you go: ```json\n{\"a\":1}\n```", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripCodeFences(tc.in))
		})
	}
}
