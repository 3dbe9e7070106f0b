package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Svc: svc}
}

// POST /workouts/start
func (h *WorkoutController) Start(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	session, err := h.Svc.StartSession(c.Request.Context(), userID, time.Time{})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": session.ID, "status": "started"})
}

type AddSetInput struct {
	ExerciseName string  `json:"exercise_name" binding:"required"`
	Weight       float64 `json:"weight" binding:"gte=0"`
	Reps         int     `json:"reps" binding:"required,gt=0"`
	SetNumber    int     `json:"set_number"`
}

// POST /workouts/:id/sets
func (h *WorkoutController) AddSet(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input AddSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := h.Svc.AddSet(c.Request.Context(), uint(sessionID), userID, services.SetInput{
		ExerciseName: input.ExerciseName,
		Weight:       input.Weight,
		Reps:         input.Reps,
		SetNumber:    input.SetNumber,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "set_id": set.ID, "set_number": set.SetNumber})
}

type FinishInput struct {
	DurationSec int `json:"duration_sec" binding:"gte=0"`
}

// POST /workouts/:id/finish
func (h *WorkoutController) Finish(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input FinishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Svc.FinishSession(c.Request.Context(), uint(sessionID), userID, input.DurationSec)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "finished", "duration_sec": session.DurationSec})
}

// GET /workouts?from=&to= (missing dates mean full history)
func (h *WorkoutController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if c.Query("from") == "" && c.Query("to") == "" {
		sessions, err := h.Svc.ListAll(c.Request.Context(), userID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, sessions)
		return
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to := from
	if c.Query("to") != "" {
		if to, ok = parseDateQuery(c, "to"); !ok {
			return
		}
	}

	sessions, err := h.Svc.ListByRange(c.Request.Context(), userID, from, to)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// DELETE /workouts/:id
func (h *WorkoutController) DeleteSession(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.DeleteSession(c.Request.Context(), uint(sessionID), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /workouts/sets/:id
func (h *WorkoutController) DeleteSet(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	setID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.DeleteSet(c.Request.Context(), uint(setID), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
