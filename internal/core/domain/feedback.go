package domain

import "errors"

var ErrFeedbackNotFound = errors.New("feedback not found")

// Feedback is a message submitted by a visitor through the public form.
type Feedback struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Message    string `json:"message" bson:"message"`
	IsResolved bool   `json:"is_resolved" bson:"is_resolved"`
}
