package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

type FoodLogInput struct {
	Name     string  `json:"name" binding:"required"`
	Date     string  `json:"date"` // YYYY-MM-DD, defaults to today
	Calories float64 `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fats     float64 `json:"fats" binding:"gte=0"`
}

func (in FoodLogInput) toService(c *gin.Context) (services.FoodInput, bool) {
	out := services.FoodInput{
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
	}
	if in.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
			return services.FoodInput{}, false
		}
		out.Date = d
	}
	return out, true
}

// POST /food
func (h *FoodController) Log(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, ok := input.toService(c)
	if !ok {
		return
	}

	entry, err := h.Svc.Log(c.Request.Context(), userID, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /food?from=YYYY-MM-DD&to=YYYY-MM-DD (both default to today)
func (h *FoodController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
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

	logs, err := h.Svc.ListByRange(c.Request.Context(), userID, from, to)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// PUT /food/:id
func (h *FoodController) Update(c *gin.Context) {
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

	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, ok := input.toService(c)
	if !ok {
		return
	}

	entry, err := h.Svc.Update(c.Request.Context(), uint(logID), userID, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /food/:id
func (h *FoodController) Delete(c *gin.Context) {
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

	if err := h.Svc.Delete(c.Request.Context(), uint(logID), userID); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
