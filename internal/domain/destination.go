package domain

// Hotel stay types. A "Lunch" hotel is a dining venue, a "Stay" hotel is
// accommodation.
const (
	StayTypeStay  = "Stay"
	StayTypeLunch = "Lunch"
)

// Spot is a point-of-interest record for a destination.
type Spot struct {
	Name          string  `json:"name" bson:"name"`
	Location      string  `json:"location" bson:"location"`
	Category      string  `json:"category" bson:"category"`
	Rating        float64 `json:"rating" bson:"rating"`
	EstimatedCost float64 `json:"estimatedCost" bson:"estimatedCost"`
	TimeSlot      string  `json:"timeSlot" bson:"timeSlot"`
	Longitude     float64 `json:"longitude" bson:"longitude"`
	Latitude      float64 `json:"latitude" bson:"latitude"`
}

// Hotel is a venue record tagged either for accommodation or dining.
type Hotel struct {
	Name          string  `json:"name" bson:"name"`
	Location      string  `json:"location" bson:"location"`
	Category      string  `json:"category" bson:"category"`
	Rating        float64 `json:"rating" bson:"rating"`
	PricePerNight float64 `json:"pricePerNight" bson:"pricePerNight"`
	StayType      string  `json:"stayType" bson:"stayType"`
	Longitude     float64 `json:"longitude" bson:"longitude"`
	Latitude      float64 `json:"latitude" bson:"latitude"`
	NearbySpot    string  `json:"nearbySpot" bson:"nearbySpot"`
}

// Destination is the named catalog of spots and hotels for a place. At most
// one document exists per distinct case-insensitive name.
type Destination struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Destination string  `json:"destination" bson:"destination"`
	Spots       []Spot  `json:"spots" bson:"spots"`
	Hotels      []Hotel `json:"hotels" bson:"hotels"`
}

// Catalog is the destination-shaped payload produced by the enrichment
// service before it is persisted.
type Catalog struct {
	Spots  []Spot  `json:"spots"`
	Hotels []Hotel `json:"hotels"`
}
