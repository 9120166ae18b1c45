package handlers

import (
	"encoding/json"
	"net/http"

	"dogwalking_service/errors"
)

// JSONAPIResponse is the envelope every successful reply is wrapped in.
// Data carries the payload, Message a plain confirmation string; whichever
// is unused gets omitted.
type JSONAPIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorJSONAPIResponse is the envelope for failed operations. The string
// is the rendered error kind, never a raw store error.
type ErrorJSONAPIResponse struct {
	Error string `json:"error"`
}

func writeSuccess(writer http.ResponseWriter, data interface{}) {
	writeJSON(writer, http.StatusOK, JSONAPIResponse{Success: true, Data: data})
}

func writeMessage(writer http.ResponseWriter, message string) {
	writeJSON(writer, http.StatusOK, JSONAPIResponse{Success: true, Message: message})
}

func writeError(writer http.ResponseWriter, err error) {
	writeJSON(writer, statusForError(err), ErrorJSONAPIResponse{Error: err.Error()})
}

func writeBadRequest(writer http.ResponseWriter, message string) {
	writeJSON(writer, http.StatusBadRequest, ErrorJSONAPIResponse{Error: message})
}

func statusForError(err error) int {
	switch errors.KindOf(err) {
	case errors.KindInvalidID, errors.KindParseError:
		return http.StatusBadRequest
	case errors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(writer http.ResponseWriter, status int, payload interface{}) {
	writer.WriteHeader(status)
	json.NewEncoder(writer).Encode(payload)
}

// Health answers the root liveness probe.
func Health(writer http.ResponseWriter, _ *http.Request) {
	writeMessage(writer, "Hello from App Root /")
}
