package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// Category groups products for navigation.
type Category struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	IsDeleted   bool   `json:"-" bson:"is_deleted"`
}
