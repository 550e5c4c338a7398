package handlers

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// serializeDocs maps raw documents to response payloads: the storage-native
// "_id" field becomes a string "id", every other field passes through
// untouched, and document order is preserved.
func serializeDocs(docs []bson.M) []bson.M {
	serialized := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		doc := make(bson.M, len(d))
		for k, v := range d {
			doc[k] = v
		}

		if raw, ok := doc["_id"]; ok {
			delete(doc, "_id")
			if oid, ok := raw.(primitive.ObjectID); ok {
				doc["id"] = oid.Hex()
			} else {
				doc["id"] = fmt.Sprintf("%v", raw)
			}
		}

		serialized = append(serialized, doc)
	}
	return serialized
}
