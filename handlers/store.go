package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the storage surface handlers depend on. *database.DB satisfies
// it; tests inject an in-memory fake. A nil Store means the process is
// running without a database connection.
type Store interface {
	FindAll(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	ListCollections(ctx context.Context) ([]string, error)
}
