package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead is a prospective-customer contact submitted through the consultation
// form. Stored in the "lead" collection.
type Lead struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" binding:"required"`
	Email          string             `json:"email" bson:"email" binding:"required,email"`
	Phone          *string            `json:"phone" bson:"phone"`
	ProjectDetails *string            `json:"project_details" bson:"project_details"`
	PreferredDate  *time.Time         `json:"preferred_date" bson:"preferred_date"`
	Source         *string            `json:"source" bson:"source"`
	Consent        *bool              `json:"consent" bson:"consent"`
}

// Prepare fills in defaults: source defaults to "website", consent to true.
func (l *Lead) Prepare() {
	if l.Source == nil {
		source := "website"
		l.Source = &source
	}
	if l.Consent == nil {
		consent := true
		l.Consent = &consent
	}
}
