package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item (furniture, lighting, decor).
// Stored in the "product" collection.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" binding:"required"`
	Description *string            `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price" binding:"gte=0"`
	Category    string             `json:"category" bson:"category" binding:"required"`
	RoomType    *string            `json:"room_type" bson:"room_type"`
	ImageURL    *string            `json:"image_url" bson:"image_url" binding:"omitnil,url"`
	InStock     *bool              `json:"in_stock" bson:"in_stock"`
	Tags        []string           `json:"tags" bson:"tags"`
}

// Prepare fills in defaults for fields left unset:
// in_stock defaults to true, tags to an empty list (never null).
func (p *Product) Prepare() {
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// ProductQuery holds the recognized query parameters for product listings.
type ProductQuery struct {
	Category string `form:"category"`
	RoomType string `form:"room_type"`
	InStock  *bool  `form:"in_stock"`
}
