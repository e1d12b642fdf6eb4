// models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead is a course-interest submission from the public lead capture form.
type Lead struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Message        string             `json:"message,omitempty" bson:"message,omitempty"`
	CourseInterest string             `json:"courseInterest,omitempty" bson:"courseInterest,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// LeadRequest is the payload for the public lead capture endpoint.
type LeadRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	CourseInterest string `json:"courseInterest"`
}
