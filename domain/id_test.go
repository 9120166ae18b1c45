package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalking_service/errors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	encoded := EncodeID(id)
	assert.Len(t, encoded, 24)

	decoded, err := DecodeID(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestDecodeRejectsMalformedIDs(t *testing.T) {
	for _, raw := range []string{
		"",
		"xyz",
		"abc123",
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		"65f1c0ffee65f1c0ffee65f1c0", // too long
	} {
		_, err := DecodeID(raw)
		require.Error(t, err, "expected %q to be rejected", raw)
		assert.Equal(t, errors.KindInvalidID, errors.KindOf(err))
	}
}
