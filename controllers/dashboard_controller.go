package controllers

import (
	"net/http"

	"github.com/JamesPraneeth/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Summaries *services.SummaryService
	Goals     *services.GoalService
	Foods     *services.FoodService
	Workouts  *services.WorkoutService
}

func NewDashboardController(
	summaries *services.SummaryService,
	goals *services.GoalService,
	foods *services.FoodService,
	workouts *services.WorkoutService,
) *DashboardController {
	return &DashboardController{
		Summaries: summaries,
		Goals:     goals,
		Foods:     foods,
		Workouts:  workouts,
	}
}

type exerciseEntry struct {
	ExerciseName string  `json:"exercise_name"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	SetNumber    int     `json:"set_number"`
}

// GET /dashboard?date=YYYY-MM-DD — the day's logs, totals and
// goal comparison in one payload. Missing date means today.
func (h *DashboardController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	day, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	summary, err := h.Summaries.DailySummary(ctx, userID, day)
	if err != nil {
		respondErr(c, err)
		return
	}

	goal, err := h.Goals.GetOrCreate(ctx, userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	foodLogs, err := h.Foods.ListByDate(ctx, userID, day)
	if err != nil {
		respondErr(c, err)
		return
	}

	sessions, err := h.Workouts.ListByRange(ctx, userID, day, day)
	if err != nil {
		respondErr(c, err)
		return
	}
	exercises := []exerciseEntry{}
	for _, sess := range sessions {
		for _, set := range sess.Sets {
			exercises = append(exercises, exerciseEntry{
				ExerciseName: set.ExerciseName,
				Weight:       set.Weight,
				Reps:         set.Reps,
				SetNumber:    set.SetNumber,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      day.Format("2006-01-02"),
		"summary":   summary,
		"goals":     goal,
		"progress":  services.CompareToGoal(summary, goal),
		"food_logs": foodLogs,
		"exercises": exercises,
	})
}

// GET /dashboard/range?from=&to= — range aggregation with comparison.
func (h *DashboardController) GetRange(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	summary, err := h.Summaries.RangeSummary(ctx, userID, from, to)
	if err != nil {
		respondErr(c, err)
		return
	}
	goal, err := h.Goals.GetOrCreate(ctx, userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":     from.Format("2006-01-02"),
		"to":       to.Format("2006-01-02"),
		"summary":  summary,
		"goals":    goal,
		"progress": services.CompareToGoal(summary, goal),
	})
}
