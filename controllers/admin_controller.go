package controllers

import (
	"net/http"
	"strconv"

	"github.com/JamesPraneeth/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admin    *services.AdminService
	Users    *services.UserService
	Foods    *services.FoodService
	Workouts *services.WorkoutService
}

func NewAdminController(
	admin *services.AdminService,
	users *services.UserService,
	foods *services.FoodService,
	workouts *services.WorkoutService,
) *AdminController {
	return &AdminController{Admin: admin, Users: users, Foods: foods, Workouts: workouts}
}

// GET /admin/overview
func (h *AdminController) Overview(c *gin.Context) {
	stats, err := h.Admin.Overview(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /admin/users
func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Admin.ListUsers(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type SetAdminInput struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// PUT /admin/users/:id/admin
func (h *AdminController) SetAdmin(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input SetAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Admin.SetAdmin(c.Request.Context(), uint(userID), *input.IsAdmin); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /admin/users/:id — removes the user and cascades to their data.
func (h *AdminController) DeleteUser(c *gin.Context) {
	requesterID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Users.Delete(c.Request.Context(), uint(targetID), requesterID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /admin/food/:id — admin path of the entry delete authorization.
func (h *AdminController) DeleteFoodLog(c *gin.Context) {
	requesterID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Foods.Delete(c.Request.Context(), uint(logID), requesterID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /admin/workouts/:id
func (h *AdminController) DeleteWorkout(c *gin.Context) {
	requesterID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Workouts.DeleteSession(c.Request.Context(), uint(sessionID), requesterID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
