package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/database"
	"studio/models"
)

// ListTestimonials handles GET /api/testimonials. min_rating must be between
// 1 and 5 and defaults to 1, so every testimonial matches by default.
func ListTestimonials(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.TestimonialQuery
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		minRating := 1
		if params.MinRating != nil {
			minRating = *params.MinRating
		}

		listDocuments(c, store, models.CollectionTestimonial, database.TestimonialFilter(minRating))
	}
}
