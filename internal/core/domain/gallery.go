package domain

import "errors"

var ErrGalleryNotFound = errors.New("gallery not found")

// Gallery is a set of image paths attached to a product.
type Gallery struct {
	ID        string   `json:"id" bson:"_id,omitempty"`
	ProductID string   `json:"product_id,omitempty" bson:"product_id,omitempty"`
	Images    []string `json:"images" bson:"images"`
}
