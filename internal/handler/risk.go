package handler

import (
	"context"
	"net/http"
	"time"

	"grasswren-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RiskHandler handles fire-risk estimation requests
type RiskHandler struct {
	service RiskService
}

// RiskService interface for dependency injection
type RiskService interface {
	Estimate(context.Context, string, time.Time) (*models.RiskEstimate, error)
}

// NewRiskHandler creates a new risk handler
func NewRiskHandler(svc RiskService) *RiskHandler {
	return &RiskHandler{service: svc}
}

// Estimate handles GET /api/risk/estimate requests
//
//	@Summary		Estimate fire risk
//	@Description	Fuses historical fire incidence, the weather forecast and the fire model score for a postcode.
//	@Tags			risk
//	@Produce		json
//	@Param			postcode	query		string	true	"Postcode"
//	@Param			currentDate	query		string	true	"ISO date, e.g. 2024-11-20"
//	@Success		200			{object}	models.RiskEstimate
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/api/risk/estimate [get]
func (h *RiskHandler) Estimate(c *gin.Context) {
	postcode := c.Query("postcode")
	dateStr := c.Query("currentDate")

	if postcode == "" || dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'postcode' and 'currentDate'"})
		return
	}

	currentDate, err := parseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid currentDate format, expected YYYY-MM-DD"})
		return
	}

	estimate, err := h.service.Estimate(c.Request.Context(), postcode, currentDate)
	if err != nil {
		respondError(c, err, "no location found for postcode")
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
