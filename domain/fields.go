package domain

import (
	"go.mongodb.org/mongo-driver/bson"

	"dogwalking_service/errors"
)

// FieldSet collects the validated field-level changes of a partial update.
// Each resource's update form feeds its supplied fields into one; the store
// applies the result as a $set merge, so absent fields and the id are never
// touched.
type FieldSet struct {
	changes bson.M
}

func NewFieldSet() *FieldSet {
	return &FieldSet{changes: bson.M{}}
}

func (fields *FieldSet) Set(name string, value interface{}) {
	fields.changes[name] = value
}

func (fields *FieldSet) Get(name string) (interface{}, bool) {
	value, ok := fields.changes[name]
	return value, ok
}

func (fields *FieldSet) Has(name string) bool {
	_, ok := fields.changes[name]
	return ok
}

func (fields *FieldSet) Empty() bool {
	return len(fields.changes) == 0
}

func (fields *FieldSet) Len() int {
	return len(fields.changes)
}

// Build returns the set itself, or a parse error when no field was supplied.
func (fields *FieldSet) Build() (*FieldSet, error) {
	if fields.Empty() {
		return nil, errors.NewParseError("No fields provided to update")
	}
	return fields, nil
}

// SetDocument shapes the collected changes as a $set merge document.
func (fields *FieldSet) SetDocument() bson.M {
	return bson.M{"$set": fields.changes}
}
