package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalking_service/errors"
)

// EncodeID renders an ObjectID as its lowercase 24 character hex form.
func EncodeID(id primitive.ObjectID) string {
	return id.Hex()
}

// DecodeID parses a hex string back into an ObjectID. Every id received
// from a caller, path parameter or embedded reference alike, goes through
// here before it is allowed near the store.
func DecodeID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errors.NewInvalidID(raw)
	}
	return id, nil
}
