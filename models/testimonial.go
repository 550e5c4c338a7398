package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is a client quote shown on the site.
// Stored in the "testimonial" collection.
type Testimonial struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientName   string             `json:"client_name" bson:"client_name" binding:"required"`
	ProjectType  *string            `json:"project_type" bson:"project_type"`
	Rating       *int               `json:"rating" bson:"rating" binding:"omitnil,gte=1,lte=5"`
	Quote        string             `json:"quote" bson:"quote" binding:"required"`
	PhotoURL     *string            `json:"photo_url" bson:"photo_url" binding:"omitnil,url"`
	CaseStudyURL *string            `json:"case_study_url" bson:"case_study_url" binding:"omitnil,url"`
}

// Prepare fills in defaults: rating defaults to 5.
func (t *Testimonial) Prepare() {
	if t.Rating == nil {
		rating := 5
		t.Rating = &rating
	}
}

// TestimonialQuery holds the recognized query parameters for testimonial
// listings. MinRating outside 1..5 is rejected at the binding boundary.
type TestimonialQuery struct {
	MinRating *int `form:"min_rating" binding:"omitnil,gte=1,lte=5"`
}
