package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

// GET /user/profile
func (h *UserController) GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             user.ID,
		"email":          user.Email,
		"name":           user.Name,
		"age":            user.Age,
		"gender":         user.Gender,
		"height":         user.Height,
		"weight":         user.Weight,
		"activity_level": user.ActivityLevel,
		"goal":           user.Goal,
		"is_admin":       user.IsAdmin,
		"created_at":     user.CreatedAt,
	})
}

type SettingsInput struct {
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	Goal          string  `json:"goal" binding:"required"`
}

// PUT /user/settings — updates the profile fields the settings page
// exposes and returns the freshly recomputed macro targets.
func (h *UserController) UpdateSettings(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, targets, err := h.Svc.UpdateSettings(c.Request.Context(), userID, services.SettingsInput{
		Weight:        input.Weight,
		ActivityLevel: input.ActivityLevel,
		Goal:          input.Goal,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "settings updated", "macros": targets})
}

type WeightInput struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Date   string  `json:"date"` // YYYY-MM-DD, defaults to today
}

// POST /user/weight
func (h *UserController) LogWeight(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var day time.Time
	if input.Date != "" {
		var err error
		day, err = time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
			return
		}
	}

	entry, err := h.Svc.LogBodyWeight(c.Request.Context(), userID, input.Weight, day)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /user/weight
func (h *UserController) ListWeights(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	logs, err := h.Svc.ListBodyWeights(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// DELETE /user/weight/:id
func (h *UserController) DeleteWeight(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Svc.DeleteBodyWeight(c.Request.Context(), uint(logID), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /user — the account and everything it owns.
func (h *UserController) DeleteAccount(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, userID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
