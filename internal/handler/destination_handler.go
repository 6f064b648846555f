package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripcraft/tripcraft-api/internal/dto"
	"github.com/tripcraft/tripcraft-api/internal/repository"
	"github.com/tripcraft/tripcraft-api/internal/service"
)

// DestinationHandler handles destination catalog requests
type DestinationHandler struct {
	destinationService service.DestinationService
}

// NewDestinationHandler creates a new destination handler
func NewDestinationHandler(destinationService service.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

// Generate enriches a destination through the external generative service.
// The call is synchronous; the catalog is persisted before answering.
func (h *DestinationHandler) Generate(c *gin.Context) {
	destination, err := h.destinationService.Generate(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrEnrichmentUnavailable) || errors.Is(err, service.ErrEnrichmentParse) {
			c.JSON(http.StatusBadGateway, dto.MessageResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, destination)
}

// ApplyTimeSlot bulk-sets a time-of-day slot on every spot of a destination
func (h *DestinationHandler) ApplyTimeSlot(c *gin.Context) {
	var req dto.TimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	if err := h.destinationService.ApplyTimeSlot(c.Request.Context(), c.Param("name"), req.TimeSlot); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Time slot applied"})
}
