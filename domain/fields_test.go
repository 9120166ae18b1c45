package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"dogwalking_service/errors"
)

func TestFieldSetCollectsChanges(t *testing.T) {
	fields := NewFieldSet()
	assert.True(t, fields.Empty())

	fields.Set("name", "Rex")
	fields.Set("age", 3)

	assert.Equal(t, 2, fields.Len())
	assert.True(t, fields.Has("name"))
	assert.False(t, fields.Has("breed"))

	value, ok := fields.Get("age")
	require.True(t, ok)
	assert.Equal(t, 3, value)
}

func TestFieldSetBuildRejectsEmpty(t *testing.T) {
	_, err := NewFieldSet().Build()
	require.Error(t, err)
	assert.Equal(t, errors.KindParseError, errors.KindOf(err))
	assert.Equal(t, "Parse error: No fields provided to update", err.Error())
}

func TestFieldSetSetDocumentIsMergeOnly(t *testing.T) {
	fields := NewFieldSet()
	fields.Set("cancelled", true)

	document := fields.SetDocument()
	assert.Equal(t, bson.M{"$set": bson.M{"cancelled": true}}, document)
}
