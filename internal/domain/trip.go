package domain

import "time"

// DateLayout is the wire and storage format for trip dates. ISO dates compare
// lexicographically, so range queries on these strings are safe.
const DateLayout = "2006-01-02"

// Collaborator is a trip-sharing entry. Anyone listed gets read/write access
// to the trip.
type Collaborator struct {
	Email string `json:"email" bson:"email"`
}

// Trip is a user-owned plan referencing one destination with a date range.
// UserID holds the owner's email and is immutable after creation.
type Trip struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	UserID        string         `json:"userId" bson:"userId"`
	Destination   string         `json:"destination" bson:"destination"`
	StartDate     string         `json:"startDate" bson:"startDate"`
	EndDate       string         `json:"endDate" bson:"endDate"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	AIGenerated   bool           `json:"aiGenerated" bson:"aiGenerated"`
	Thumbnail     string         `json:"thumbnail" bson:"thumbnail"`
	Collaborators []Collaborator `json:"collaborators,omitempty" bson:"collaborators,omitempty"`
}
