package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio/config"
	"studio/crm"
)

// fakeStore is an in-memory Store for handler tests. It records the last
// filter each read used and every document inserted, and can be primed to
// fail.
type fakeStore struct {
	docs        map[string][]bson.M
	inserted    map[string][]interface{}
	lastFilter  bson.M
	findErr     error
	insertErr   error
	collections []string
	listErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:     map[string][]bson.M{},
		inserted: map[string][]interface{}{},
	}
}

func (f *fakeStore) FindAll(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.docs[collection], nil
}

func (f *fakeStore) InsertOne(_ context.Context, collection string, doc interface{}) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted[collection] = append(f.inserted[collection], doc)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeStore) ListCollections(_ context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.collections, nil
}

// newTestRouter wires the same route table as main.go onto a test engine.
func newTestRouter(store Store, notifier *crm.HubSpot, cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/", Root)
	r.GET("/api/hello", Hello)
	r.GET("/test", Diagnostics(store, cfg))

	r.GET("/api/products", ListProducts(store))
	r.GET("/api/projects", ListProjects(store))
	r.GET("/api/testimonials", ListTestimonials(store))
	r.GET("/api/blogposts", ListBlogPosts(store))
	r.POST("/api/leads", CreateLead(store, notifier))
	r.POST("/api/seed-demo", SeedDemo(store, cfg.SeedToken))

	return r
}

func performRequest(r http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
