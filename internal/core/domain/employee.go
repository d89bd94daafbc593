package domain

import "time"

// Employee is the registry resource, keyed by a registry-assigned id.
// The id is assigned exactly once at creation and never reused.
type Employee struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
