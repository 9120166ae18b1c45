package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogwalking_service/errors"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errors.NewInvalidID("xyz"), http.StatusBadRequest},
		{errors.NewParseError("bad date"), http.StatusBadRequest},
		{errors.NewNotFound(), http.StatusNotFound},
		{errors.NewDatabaseError("boom", nil), http.StatusInternalServerError},
		{errors.NewInternalError("unreachable"), http.StatusInternalServerError},
		{fmt.Errorf("untyped"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, statusForError(c.err), "error: %v", c.err)
	}
}

func TestWriteSuccessEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	writeSuccess(recorder, map[string]string{"_id": "65b3a1f2e4b0c83d94f1a2b3"})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"data":{"_id":"65b3a1f2e4b0c83d94f1a2b3"}}`, recorder.Body.String())
}

func TestWriteMessageEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	writeMessage(recorder, "Booking Deleted: 65b3a1f2e4b0c83d94f1a2b3")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"message":"Booking Deleted: 65b3a1f2e4b0c83d94f1a2b3"}`, recorder.Body.String())
}

func TestWriteErrorNeverLeaksStoreErrors(t *testing.T) {
	recorder := httptest.NewRecorder()
	cause := fmt.Errorf("(mongo) socket was unexpectedly closed")
	writeError(recorder, errors.NewDatabaseError("Failed to Update Booking", cause))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "socket")
}
