package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/JamesPraneeth/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type CoachController struct {
	Coach     *services.CoachService
	Summaries *services.SummaryService
}

func NewCoachController(coach *services.CoachService, summaries *services.SummaryService) *CoachController {
	return &CoachController{Coach: coach, Summaries: summaries}
}

// GET /coach/recommendations — three personalized tips. When the provider
// is down the page still renders: static tips plus a degraded flag.
func (h *CoachController) Recommendations(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recs, err := h.Coach.Recommendations(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUpstream) {
			log.Printf("coach unavailable: %v", err)
			c.JSON(http.StatusOK, gin.H{
				"recommendations":   services.FallbackTips,
				"coach_unavailable": true,
			})
			return
		}
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

type AskInput struct {
	Question string `json:"question" binding:"required"`
	Date     string `json:"date"` // YYYY-MM-DD, defaults to today
}

// POST /coach/ask — free-text question answered with today's summary as
// context; the provider's text comes back verbatim.
func (h *CoachController) Ask(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input AskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day := time.Now()
	if input.Date != "" {
		var err error
		day, err = time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
			return
		}
	}

	summary, err := h.Summaries.DailySummary(c.Request.Context(), userID, day)
	if err != nil {
		respondErr(c, err)
		return
	}

	answer, err := h.Coach.Ask(c.Request.Context(), summary, input.Question)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
