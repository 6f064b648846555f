package service

import "errors"

// Service-level errors mapped to HTTP statuses at the handler boundary
var (
	// ErrInvalidCredentials is returned on a login with a wrong email or password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a verified principal cannot be re-resolved
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyDestination is returned when a trip is created without a destination
	ErrEmptyDestination = errors.New("trip destination must not be empty")

	// ErrTripNotFound is returned when an itinerary references a missing trip
	ErrTripNotFound = errors.New("trip id not found")

	// ErrEnrichmentUnavailable is returned when the external generative call fails
	ErrEnrichmentUnavailable = errors.New("enrichment service unavailable")

	// ErrEnrichmentParse is returned when the enrichment response cannot be decoded
	ErrEnrichmentParse = errors.New("failed to parse enrichment response")
)
