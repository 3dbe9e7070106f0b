package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JamesPraneeth/fitness-tracker/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:routertest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	// Middlewares read identity lookups through the package-level handle.
	config.DB = db

	return SetupRouter(db)
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(router, "POST", "/auth/register", "", fmt.Sprintf(`{
		"email": %q, "password": "secret123", "name": "E2E User",
		"age": 30, "gender": "male", "height": 175, "weight": 70,
		"activity_level": "moderate", "goal": "maintain"
	}`, email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, "POST", "/auth/login", "", fmt.Sprintf(`{"email": %q, "password": "secret123"}`, email))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestDashboardFlow(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "flow@test.com")

	for _, body := range []string{
		`{"name": "chicken", "date": "2026-08-10", "calories": 500, "protein": 30, "carbs": 50, "fats": 10}`,
		`{"name": "shake", "date": "2026-08-10", "calories": 300, "protein": 20, "carbs": 20, "fats": 5}`,
	} {
		w := doJSON(router, "POST", "/food", token, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Log a workout on the same day.
	w := doJSON(router, "POST", "/workouts/start", token, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var started struct {
		SessionID uint `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	for _, body := range []string{
		`{"exercise_name": "bench press", "weight": 50, "reps": 10}`,
		`{"exercise_name": "bench press", "weight": 55, "reps": 8}`,
	} {
		w = doJSON(router, "POST", fmt.Sprintf("/workouts/%d/sets", started.SessionID), token, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = doJSON(router, "GET", "/dashboard?date=2026-08-10", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dash struct {
		Summary struct {
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein"`
			Carbs    float64 `json:"carbs"`
			Fats     float64 `json:"fats"`
			Sets     int     `json:"sets"`
			Reps     int     `json:"reps"`
			Volume   float64 `json:"volume"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, 800.0, dash.Summary.Calories)
	assert.Equal(t, 50.0, dash.Summary.Protein)
	assert.Equal(t, 70.0, dash.Summary.Carbs)
	assert.Equal(t, 15.0, dash.Summary.Fats)

	// Workout day is "today" at the server, not necessarily 2026-08-10, so
	// query the workout list directly for the volume check.
	w = doJSON(router, "GET", "/workouts", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var sessions []struct {
		Sets []struct {
			Weight float64 `json:"Weight"`
			Reps   int     `json:"Reps"`
		} `json:"Sets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	require.Len(t, sessions, 1)
	assert.Len(t, sessions[0].Sets, 2)
}

func TestAuthRequired(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/dashboard", "/food", "/goals", "/user/profile"} {
		w := doJSON(router, "GET", path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminRoutesForbiddenForRegularUsers(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "pleb@test.com")

	w := doJSON(router, "GET", "/admin/overview", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGoalsEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	token := registerAndLogin(t, router, "goals@test.com")

	// Registration computes macro targets from the profile.
	w := doJSON(router, "GET", "/goals", token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Goals struct {
			Calories float64 `json:"Calories"`
		} `json:"goals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.Goals.Calories, 0.0)

	// Explicit override.
	w = doJSON(router, "PUT", "/goals", token, `{"calories": 2200, "protein": 160, "carbs": 220, "fats": 70}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
