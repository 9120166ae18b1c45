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

type OwnerHandler struct {
	service *application.OwnerService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewOwnerHandler(service *application.OwnerService, tracer trace.Tracer, logger *logrus.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *OwnerHandler) Init(router *mux.Router) {
	router.HandleFunc("/owners", handler.Create).Methods("POST")
	router.HandleFunc("/owners", handler.GetAll).Methods("GET")
	router.HandleFunc("/owners/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/owners/{id}", handler.Update).Methods("PUT")
	router.HandleFunc("/owners/{id}", handler.Delete).Methods("DELETE")
}

func (handler *OwnerHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "OwnerHandler.Create")
	defer span.End()

	var request domain.OwnerRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		handler.logger.Warnf("create owner: %v", err)
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

func (handler *OwnerHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "OwnerHandler.GetAll")
	defer span.End()

	responses, err := handler.service.GetAll(ctx)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, responses)
}

func (handler *OwnerHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "OwnerHandler.Get")
	defer span.End()

	response, err := handler.service.Get(ctx, mux.Vars(req)["id"])
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, response)
}

func (handler *OwnerHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "OwnerHandler.Update")
	defer span.End()

	var update domain.OwnerUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeBadRequest(writer, "Invalid input: could not parse JSON payload.")
		return
	}
	id, err := handler.service.Update(ctx, mux.Vars(req)["id"], &update)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeMessage(writer, fmt.Sprintf("Owner Update Successful: %s", id))
}

func (handler *OwnerHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "OwnerHandler.Delete")
	defer span.End()

	id, err := handler.service.Delete(ctx, mux.Vars(req)["id"])
	if err != nil {
		writeError(writer, err)
		return
	}
	writeMessage(writer, fmt.Sprintf("Owner Deleted: %s", id))
}
