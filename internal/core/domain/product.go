package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Thumbnails holds the two card images shown on product listings.
type Thumbnails struct {
	Front string `json:"front" bson:"front"`
	Back  string `json:"back" bson:"back"`
}

// Product is a catalog item.
type Product struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	Title            string     `json:"title" bson:"title"`
	ShortDescription string     `json:"short_description" bson:"short_description"`
	Description      string     `json:"description" bson:"description"`
	Price            float64    `json:"price" bson:"price"`
	Thumbnails       Thumbnails `json:"thumbnails" bson:"thumbnails"`
	CategoryID       string     `json:"category_id,omitempty" bson:"category_id,omitempty"`
	GalleryIDs       []string   `json:"gallery_ids,omitempty" bson:"gallery_ids,omitempty"`
	IsDeleted        bool       `json:"-" bson:"is_deleted"`
}
