package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/models"
)

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

type seedDoc struct {
	Collection string
	Doc        interface{}
}

// demoDocuments returns the sample content inserted by the seed endpoint:
// 2 products, 2 testimonials, 2 projects and 1 blog post, in insert order.
func demoDocuments() []seedDoc {
	products := []models.Product{
		{
			Title:       "Modern Lounge Chair",
			Description: strPtr("Ergonomic lounge chair in walnut finish."),
			Price:       799.0,
			Category:    "furniture",
			RoomType:    strPtr("living room"),
			Tags:        []string{"modern", "wood"},
		},
		{
			Title:       "Marble Pendant Light",
			Description: strPtr("Minimal pendant for kitchen islands."),
			Price:       199.0,
			Category:    "lighting",
			RoomType:    strPtr("kitchen"),
			Tags:        []string{"minimal", "lighting"},
		},
	}

	testimonials := []models.Testimonial{
		{
			ClientName:  "Ava Patel",
			ProjectType: strPtr("Full Home"),
			Rating:      intPtr(5),
			Quote:       "They transformed our space beyond expectations!",
		},
		{
			ClientName:  "Liam Chen",
			ProjectType: strPtr("Kitchen Remodel"),
			Rating:      intPtr(5),
			Quote:       "Professional, timely, and stunning results.",
		},
	}

	projects := []models.Project{
		{
			Title:         "Skyline Penthouse",
			Style:         strPtr("Modern"),
			Room:          strPtr("Living Room"),
			BudgetRange:   strPtr("$$$"),
			DurationWeeks: intPtr(12),
			Description:   strPtr("A sleek urban living space with panoramic views."),
		},
		{
			Title:         "Cozy Minimal Bedroom",
			Style:         strPtr("Minimalist"),
			Room:          strPtr("Bedroom"),
			BudgetRange:   strPtr("$$"),
			DurationWeeks: intPtr(6),
			Description:   strPtr("Calming tones with functional storage solutions."),
		},
	}

	posts := []models.BlogPost{
		{
			Title:    "Top 7 Custom Home Interiors Trends",
			Slug:     "custom-home-interiors-trends",
			Excerpt:  strPtr("Explore the latest in custom home interiors."),
			Content:  "Long-form content about custom home interiors...",
			Keywords: []string{"custom home interiors", "interior design"},
		},
	}

	docs := []seedDoc{}
	for i := range products {
		products[i].Prepare()
		docs = append(docs, seedDoc{models.CollectionProduct, products[i]})
	}
	for i := range testimonials {
		testimonials[i].Prepare()
		docs = append(docs, seedDoc{models.CollectionTestimonial, testimonials[i]})
	}
	for i := range projects {
		projects[i].Prepare()
		docs = append(docs, seedDoc{models.CollectionProject, projects[i]})
	}
	for i := range posts {
		posts[i].Prepare()
		docs = append(docs, seedDoc{models.CollectionBlogPost, posts[i]})
	}

	return docs
}

// SeedDemo handles POST /api/seed-demo. The shared token gates the endpoint;
// a mismatch inserts nothing. Seeding is deliberately not idempotent: each
// successful call inserts a fresh batch of sample documents. A storage
// failure partway through leaves the documents already inserted in place.
func SeedDemo(store Store, seedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("token") != seedToken {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		if store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to seed demo content",
				"details": errNotConnected.Error(),
			})
			return
		}

		ctx := c.Request.Context()
		for _, entry := range demoDocuments() {
			if _, err := store.InsertOne(ctx, entry.Collection, entry.Doc); err != nil {
				log.Printf("Seed insert into %s failed: %v", entry.Collection, err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "failed to seed demo content",
					"details": err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "seeded"})
	}
}
