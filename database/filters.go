package database

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Filter builders translate recognized query parameters into Mongo filters.
// Absent parameters (empty string, nil pointer) are left out of the filter
// entirely, so they never constrain the query. Conditions combine
// conjunctively. Construction itself cannot fail: out-of-range or mistyped
// values are rejected at the request binding boundary before reaching here.

// ProductFilter matches products by exact category, room type and stock flag.
func ProductFilter(category, roomType string, inStock *bool) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if roomType != "" {
		filter["room_type"] = roomType
	}
	if inStock != nil {
		filter["in_stock"] = *inStock
	}
	return filter
}

// ProjectFilter matches portfolio projects by exact style and room.
func ProjectFilter(style, room string) bson.M {
	filter := bson.M{}
	if style != "" {
		filter["style"] = style
	}
	if room != "" {
		filter["room"] = room
	}
	return filter
}

// TestimonialFilter matches testimonials rated at or above minRating.
// The rating condition is always present; callers apply the default of 1.
func TestimonialFilter(minRating int) bson.M {
	return bson.M{"rating": bson.M{"$gte": minRating}}
}

// BlogPostFilter matches blog posts by published state, which is always
// applied, and optionally by keyword membership in the keywords array.
func BlogPostFilter(published bool, keyword string) bson.M {
	filter := bson.M{"published": published}
	if keyword != "" {
		filter["keywords"] = bson.M{"$in": []string{keyword}}
	}
	return filter
}
