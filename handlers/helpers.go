package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

var errNotConnected = errors.New("database not connected")

// listDocuments runs a filtered collection scan and responds with the
// serialized documents. Storage failures surface uniformly as a 500 carrying
// the underlying error text.
func listDocuments(c *gin.Context, store Store, collection string, filter bson.M) {
	if store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to query " + collection,
			"details": errNotConnected.Error(),
		})
		return
	}

	docs, err := store.FindAll(c.Request.Context(), collection, filter)
	if err != nil {
		log.Printf("FindAll %s error: %v", collection, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to query " + collection,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, serializeDocs(docs))
}
