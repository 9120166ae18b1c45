package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"dogwalking_service/domain"
	application "dogwalking_service/service"
)

type SitterHandler struct {
	service *application.SitterService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewSitterHandler(service *application.SitterService, tracer trace.Tracer, logger *logrus.Logger) *SitterHandler {
	return &SitterHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *SitterHandler) Init(router *mux.Router) {
	router.HandleFunc("/sitters", handler.Create).Methods("POST")
	router.HandleFunc("/sitters", handler.GetAll).Methods("GET")
	router.HandleFunc("/sitters/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/sitters/{id}", handler.Update).Methods("PUT")
	router.HandleFunc("/sitters/{id}", handler.Delete).Methods("DELETE")
}

func (handler *SitterHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SitterHandler.Create")
	defer span.End()

	var request domain.SitterRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		handler.logger.Warnf("create sitter: %v", err)
		writeBadRequest(writer, "Invalid input. Missing required fields or wrong types.")
		return
	}
	response, err := handler.service.Create(ctx, &request)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, response)
}

func (handler *SitterHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SitterHandler.GetAll")
	defer span.End()

	responses, err := handler.service.GetAll(ctx)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, responses)
}

func (handler *SitterHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SitterHandler.Get")
	defer span.End()

	response, err := handler.service.Get(ctx, mux.Vars(req)["id"])
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, response)
}

func (handler *SitterHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SitterHandler.Update")
	defer span.End()

	var update domain.SitterUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeBadRequest(writer, "Invalid input: could not parse JSON payload.")
		return
	}
	id, err := handler.service.Update(ctx, mux.Vars(req)["id"], &update)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeMessage(writer, fmt.Sprintf("Sitter Update Successful: %s", id))
}

func (handler *SitterHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "SitterHandler.Delete")
	defer span.End()

	id, err := handler.service.Delete(ctx, mux.Vars(req)["id"])
	if err != nil {
		writeError(writer, err)
		return
	}
	writeMessage(writer, fmt.Sprintf("Sitter Deleted: %s", id))
}
