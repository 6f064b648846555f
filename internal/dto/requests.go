package dto

import "github.com/tripcraft/tripcraft-api/internal/domain"

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TimeSlotRequest sets a time-of-day slot on every spot of a destination
type TimeSlotRequest struct {
	TimeSlot string `json:"timeSlot" binding:"required"`
}

// MessageResponse is the plain message envelope most endpoints answer with
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the display name alongside the login message; the
// token itself travels in the jwt cookie, never in the body
type LoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// ServerErrorResponse is the catch-all 500 shape
type ServerErrorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// StatusResponse answers GET /api/auth/status
type StatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// TripCreatedResponse is the composed read model returned by trip creation.
// Lunch and Stay are nil when the destination has no matching hotel.
type TripCreatedResponse struct {
	TripID string        `json:"tripId"`
	Spots  []domain.Spot `json:"spots"`
	Lunch  *domain.Hotel `json:"lunch"`
	Stay   *domain.Hotel `json:"stay"`
}
