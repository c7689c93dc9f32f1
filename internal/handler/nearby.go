package handler

import (
	"context"
	"net/http"

	"grasswren-api/internal/geo"

	"github.com/gin-gonic/gin"
)

// NearbyHandler handles nearby-observation requests
type NearbyHandler struct {
	service NearbyService
}

// NearbyService interface for dependency injection
type NearbyService interface {
	Nearby(context.Context, string) (*geo.NearbyResult, error)
}

// NewNearbyHandler creates a new nearby handler
func NewNearbyHandler(svc NearbyService) *NearbyHandler {
	return &NearbyHandler{service: svc}
}

// Nearby handles GET /api/grasswren/geo/nearby requests
//
//	@Summary		Nearby grasswren sightings
//	@Description	Lists sightings within the configured radius of a postcode, nearest first.
//	@Tags			grasswren
//	@Produce		json
//	@Param			postcode	query		string	true	"Postcode"
//	@Success		200			{object}	geo.NearbyResult
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/api/grasswren/geo/nearby [get]
func (h *NearbyHandler) Nearby(c *gin.Context) {
	postcode := c.Query("postcode")
	if postcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'postcode'"})
		return
	}

	result, err := h.service.Nearby(c.Request.Context(), postcode)
	if err != nil {
		respondError(c, err, "no location found for postcode")
		return
	}

	c.JSON(http.StatusOK, result)
}
