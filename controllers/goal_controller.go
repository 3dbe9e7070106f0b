package controllers

import (
	"net/http"

	"github.com/JamesPraneeth/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals     *services.GoalService
	Summaries *services.SummaryService
}

func NewGoalController(goals *services.GoalService, summaries *services.SummaryService) *GoalController {
	return &GoalController{Goals: goals, Summaries: summaries}
}

// GET /goals — the stored targets plus today's progress against them.
func (h *GoalController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx := c.Request.Context()

	goal, err := h.Goals.GetOrCreate(ctx, userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	day, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}
	summary, err := h.Summaries.DailySummary(ctx, userID, day)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goals":    goal,
		"progress": services.CompareToGoal(summary, goal),
	})
}

type GoalUpdateInput struct {
	Calories float64 `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fats     float64 `json:"fats" binding:"gte=0"`
}

// PUT /goals
func (h *GoalController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input GoalUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.Goals.Update(c.Request.Context(), userID, services.GoalInput{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
