package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio/config"
	"studio/models"
)

func TestSeedDemo_WrongTokenInsertsNothing(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, nil, config.Config{SeedToken: "secret"})

	w := performRequest(r, http.MethodPost, "/api/seed-demo?token=wrong", nil)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "Forbidden"}`, w.Body.String())
	assert.Empty(t, store.inserted)
}

func TestSeedDemo_MissingToken(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, nil, config.Config{SeedToken: "secret"})

	w := performRequest(r, http.MethodPost, "/api/seed-demo", nil)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, store.inserted)
}

func TestSeedDemo_InsertsSampleBatch(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, nil, config.Config{SeedToken: "secret"})

	w := performRequest(r, http.MethodPost, "/api/seed-demo?token=secret", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "seeded"}`, w.Body.String())

	assert.Len(t, store.inserted[models.CollectionProduct], 2)
	assert.Len(t, store.inserted[models.CollectionTestimonial], 2)
	assert.Len(t, store.inserted[models.CollectionProject], 2)
	assert.Len(t, store.inserted[models.CollectionBlogPost], 1)

	product, ok := store.inserted[models.CollectionProduct][0].(models.Product)
	require.True(t, ok)
	assert.Equal(t, "Modern Lounge Chair", product.Title)
	require.NotNil(t, product.InStock)
	assert.True(t, *product.InStock)

	post, ok := store.inserted[models.CollectionBlogPost][0].(models.BlogPost)
	require.True(t, ok)
	require.NotNil(t, post.Published)
	assert.True(t, *post.Published)
	assert.Contains(t, post.Keywords, "interior design")
}

func TestSeedDemo_NotIdempotent(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, nil, config.Config{SeedToken: "secret"})

	for i := 0; i < 2; i++ {
		w := performRequest(r, http.MethodPost, "/api/seed-demo?token=secret", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Len(t, store.inserted[models.CollectionProduct], 4)
	assert.Len(t, store.inserted[models.CollectionTestimonial], 4)
	assert.Len(t, store.inserted[models.CollectionProject], 4)
	assert.Len(t, store.inserted[models.CollectionBlogPost], 2)
}

func TestSeedDemo_StorageError(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("disk full")
	r := newTestRouter(store, nil, config.Config{SeedToken: "secret"})

	w := performRequest(r, http.MethodPost, "/api/seed-demo?token=secret", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSeedDemo_NoDatabase(t *testing.T) {
	r := newTestRouter(nil, nil, config.Config{SeedToken: "secret"})

	w := performRequest(r, http.MethodPost, "/api/seed-demo?token=secret", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
