package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	application "dogwalking_service/service"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{24}$`)

func newOwnerRouter(store *fakeOwnerStore) *mux.Router {
	service := application.NewOwnerService(store, testTracer(), testLogger())
	handler := NewOwnerHandler(service, testTracer(), testLogger())
	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)
	handler.Init(router)
	return router
}

func TestCreateOwnerEndpoint(t *testing.T) {
	router := newOwnerRouter(newFakeOwnerStore())

	body := `{"name":"Jane Doe","email":"jane@example.com","phone":"5551234567","address":"1 Main St"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/owners", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			ID      string `json:"_id"`
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Address string `json:"address"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Regexp(t, hexID, envelope.Data.ID)
	assert.Equal(t, "Jane Doe", envelope.Data.Name)
	assert.Equal(t, "jane@example.com", envelope.Data.Email)
	assert.Equal(t, "5551234567", envelope.Data.Phone)
	assert.Equal(t, "1 Main St", envelope.Data.Address)
}

func TestCreateOwnerEndpointRejectsBadPayload(t *testing.T) {
	router := newOwnerRouter(newFakeOwnerStore())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("POST", "/owners", strings.NewReader("{not json")))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Error)
}

func TestUpdateOwnerEndpointEmptyPayload(t *testing.T) {
	store := newFakeOwnerStore()
	router := newOwnerRouter(store)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/owners/65b3a1f2e4b0c83d94f1a2b3", strings.NewReader(`{}`)))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No fields provided to update")
	assert.Equal(t, 0, store.updateCalls)
}

func TestUpdateOwnerEndpointMessage(t *testing.T) {
	router := newOwnerRouter(newFakeOwnerStore())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("PUT", "/owners/65b3a1f2e4b0c83d94f1a2b3", strings.NewReader(`{"name":"Janet"}`)))

	require.Equal(t, http.StatusOK, recorder.Code)
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Owner Update Successful: 65b3a1f2e4b0c83d94f1a2b3", envelope.Message)
}

func TestDeleteOwnerEndpointMalformedID(t *testing.T) {
	store := newFakeOwnerStore()
	router := newOwnerRouter(store)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/owners/xyz", nil))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid ID format")
	assert.Equal(t, 0, store.deleteCalls)
}

func TestGetOwnerEndpointMissing(t *testing.T) {
	router := newOwnerRouter(newFakeOwnerStore())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/owners/65b3a1f2e4b0c83d94f1a2b3", nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Item not found")
}

func TestGetAllOwnersEndpointEmptyList(t *testing.T) {
	router := newOwnerRouter(newFakeOwnerStore())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/owners", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, recorder.Body.String())
}
