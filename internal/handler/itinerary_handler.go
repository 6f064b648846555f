package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/dto"
	"github.com/tripcraft/tripcraft-api/internal/repository"
	"github.com/tripcraft/tripcraft-api/internal/service"
)

// ItineraryHandler handles itinerary requests
type ItineraryHandler struct {
	itineraryService service.ItineraryService
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(itineraryService service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{itineraryService: itineraryService}
}

// List returns all itineraries
func (h *ItineraryHandler) List(c *gin.Context) {
	itineraries, err := h.itineraryService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, itineraries)
}

// Get returns an itinerary by id
func (h *ItineraryHandler) Get(c *gin.Context) {
	itinerary, err := h.itineraryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

// GetByTrip returns the itinerary attached to a trip
func (h *ItineraryHandler) GetByTrip(c *gin.Context) {
	itinerary, err := h.itineraryService.GetByTrip(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

// Create upserts the itinerary for a trip
func (h *ItineraryHandler) Create(c *gin.Context) {
	var itinerary domain.Itinerary
	if err := c.ShouldBindJSON(&itinerary); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	saved, err := h.itineraryService.Upsert(c.Request.Context(), &itinerary)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Trip ID not found!"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// Update replaces an itinerary by id
func (h *ItineraryHandler) Update(c *gin.Context) {
	var itinerary domain.Itinerary
	if err := c.ShouldBindJSON(&itinerary); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	updated, err := h.itineraryService.Update(c.Request.Context(), c.Param("id"), &itinerary)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes an itinerary
func (h *ItineraryHandler) Delete(c *gin.Context) {
	if err := h.itineraryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Itinerary deleted successfully"})
}
