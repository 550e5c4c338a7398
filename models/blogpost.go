package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is an SEO content entry. Stored in the "blogpost" collection.
type BlogPost struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title" binding:"required"`
	Slug          string             `json:"slug" bson:"slug" binding:"required"`
	Excerpt       *string            `json:"excerpt" bson:"excerpt"`
	Content       string             `json:"content" bson:"content" binding:"required"`
	CoverImageURL *string            `json:"cover_image_url" bson:"cover_image_url" binding:"omitnil,url"`
	Keywords      []string           `json:"keywords" bson:"keywords"`
	Published     *bool              `json:"published" bson:"published"`
}

// Prepare fills in defaults: published defaults to true, keywords to an
// empty list (never null).
func (b *BlogPost) Prepare() {
	if b.Published == nil {
		published := true
		b.Published = &published
	}
	if b.Keywords == nil {
		b.Keywords = []string{}
	}
}

// BlogPostQuery holds the recognized query parameters for blog listings.
// Published defaults to true when absent and is always applied to the filter.
type BlogPostQuery struct {
	Published *bool  `form:"published"`
	Keyword   string `form:"keyword"`
}
