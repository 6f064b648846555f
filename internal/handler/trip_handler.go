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

// TripHandler handles trip requests
type TripHandler struct {
	tripService service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// List returns the caller's owned and shared trips
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.tripService.ListForUser(c.Request.Context(), c.GetString(ContextUserEmail))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, trips)
}

// Get returns a single trip by id
func (h *TripHandler) Get(c *gin.Context) {
	trip, err := h.tripService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, trip)
}

// Recent returns the caller's trips that already ended
func (h *TripHandler) Recent(c *gin.Context) {
	trips, err := h.tripService.Recent(c.Request.Context(), c.GetString(ContextUserEmail))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, trips)
}

// Upcoming returns the caller's trips that have not started yet
func (h *TripHandler) Upcoming(c *gin.Context) {
	trips, err := h.tripService.Upcoming(c.Request.Context(), c.GetString(ContextUserEmail))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, trips)
}

// Create persists a new trip and answers with the composed read model
func (h *TripHandler) Create(c *gin.Context) {
	var trip domain.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	response, err := h.tripService.Create(c.Request.Context(), c.GetString(ContextUserEmail), &trip)
	if err != nil {
		if errors.Is(err, service.ErrEmptyDestination) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Update replaces an existing trip
func (h *TripHandler) Update(c *gin.Context) {
	var trip domain.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	updated, err := h.tripService.Update(c.Request.Context(), c.Param("id"), &trip)
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

// Delete removes a trip
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.tripService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
