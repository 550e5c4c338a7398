package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio entry showcasing completed work.
// Stored in the "project" collection.
type Project struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title" binding:"required"`
	Style          *string            `json:"style" bson:"style"`
	Room           *string            `json:"room" bson:"room"`
	BudgetRange    *string            `json:"budget_range" bson:"budget_range"`
	DurationWeeks  *int               `json:"duration_weeks" bson:"duration_weeks" binding:"omitnil,gte=0"`
	Description    *string            `json:"description" bson:"description"`
	BeforeImageURL *string            `json:"before_image_url" bson:"before_image_url" binding:"omitnil,url"`
	AfterImageURL  *string            `json:"after_image_url" bson:"after_image_url" binding:"omitnil,url"`
	Gallery        []string           `json:"gallery" bson:"gallery" binding:"omitempty,dive,url"`
}

// Prepare fills in defaults: gallery becomes an empty list, never null.
func (p *Project) Prepare() {
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
}

// ProjectQuery holds the recognized query parameters for portfolio listings.
type ProjectQuery struct {
	Style string `form:"style"`
	Room  string `form:"room"`
}
