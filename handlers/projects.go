package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/database"
	"studio/models"
)

// ListProjects handles GET /api/projects. Recognized query parameters:
// style and room, both exact match.
func ListProjects(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.ProjectQuery
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filter := database.ProjectFilter(params.Style, params.Room)
		listDocuments(c, store, models.CollectionProject, filter)
	}
}
