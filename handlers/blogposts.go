package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/database"
	"studio/models"
)

// ListBlogPosts handles GET /api/blogposts. published defaults to true and is
// always part of the filter; keyword matches against the keywords array.
func ListBlogPosts(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.BlogPostQuery
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		published := true
		if params.Published != nil {
			published = *params.Published
		}

		listDocuments(c, store, models.CollectionBlogPost, database.BlogPostFilter(published, params.Keyword))
	}
}
