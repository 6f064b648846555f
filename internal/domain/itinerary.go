package domain

// Itinerary is free-form day-by-day content attached 1:1 to a trip. The
// content shape is owned by the frontend; the backend stores it verbatim.
type Itinerary struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	TripID    string           `json:"tripId" bson:"tripId"`
	Itinerary []map[string]any `json:"itinerary" bson:"itinerary"`
}
