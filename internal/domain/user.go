package domain

import "time"

// Identity providers a user record can originate from.
const (
	ProviderLocal  = "LOCAL"
	ProviderGoogle = "GOOGLE"
)

// User represents a user in the system. Email is the business key: exactly one
// user per email, matched case-sensitively. Password is empty for federated
// identities.
type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Provider  string    `json:"provider" bson:"provider"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}
