package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/crm"
	"studio/models"
)

// CreateLead handles POST /api/leads. The lead is validated and persisted
// first; if a CRM credential is configured, a contact-creation call is then
// attempted with a bounded timeout. That call is best-effort: its outcome
// never changes the response.
func CreateLead(store Store, notifier *crm.HubSpot) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lead models.Lead
		if err := c.ShouldBindJSON(&lead); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "invalid lead",
				"fields": models.FieldErrors(err),
			})
			return
		}
		lead.Prepare()

		if store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to create lead",
				"details": errNotConnected.Error(),
			})
			return
		}

		ctx := c.Request.Context()
		id, err := store.InsertOne(ctx, models.CollectionLead, lead)
		if err != nil {
			log.Printf("InsertOne lead error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to create lead",
				"details": err.Error(),
			})
			return
		}

		if notifier.Enabled() {
			if err := notifier.CreateContact(ctx, lead); err != nil {
				log.Printf("HubSpot contact creation failed: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"id": id, "status": "received"})
	}
}
