package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account schema for the "user" collection. No endpoint reads or
// writes it yet; the schema is kept so the collection's shape is defined in
// one place when user features land.
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" binding:"required"`
	Email    string             `json:"email" bson:"email" binding:"required,email"`
	Address  *string            `json:"address" bson:"address"`
	Age      *int               `json:"age" bson:"age" binding:"omitnil,gte=0,lte=120"`
	IsActive *bool              `json:"is_active" bson:"is_active"`
}

// Prepare fills in defaults: is_active defaults to true.
func (u *User) Prepare() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}
