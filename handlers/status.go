package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/config"
)

// Root handles GET /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Interior Design Studio Backend running"})
}

// Hello handles GET /api/hello.
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// Diagnostics handles GET /test. It reports whether the database connection
// is configured and reachable, listing up to 10 collection names when
// introspection succeeds. Every failure mode degrades to an informational
// string; the endpoint always answers 200.
func Diagnostics(store Store, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if store != nil {
			response["database"] = "✅ Available"
			response["connection_status"] = "Connected"

			collections, err := store.ListCollections(c.Request.Context())
			if err != nil {
				response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			} else {
				if len(collections) > 10 {
					collections = collections[:10]
				}
				response["collections"] = collections
				response["database"] = "✅ Connected & Working"
			}
		}

		response["database_url"] = setOrNot(cfg.DatabaseURL != "")
		response["database_name"] = setOrNot(cfg.DatabaseName != "")

		c.JSON(http.StatusOK, response)
	}
}

func setOrNot(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
