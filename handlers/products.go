package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/database"
	"studio/models"
)

// ListProducts handles GET /api/products. Recognized query parameters:
// category, room_type (exact match) and in_stock (boolean). Omitted
// parameters never constrain the result.
func ListProducts(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ProductQuery
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filter := database.ProductFilter(params.Category, params.RoomType, params.InStock)
		listDocuments(c, store, models.CollectionProduct, filter)
	}
}
