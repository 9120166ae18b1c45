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

type DogHandler struct {
	service *application.DogService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewDogHandler(service *application.DogService, tracer trace.Tracer, logger *logrus.Logger) *DogHandler {
	return &DogHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *DogHandler) Init(router *mux.Router) {
	router.HandleFunc("/dogs", handler.Create).Methods("POST")
	router.HandleFunc("/dogs", handler.GetAll).Methods("GET")
	router.HandleFunc("/dogs/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/dogs/{id}", handler.Update).Methods("PUT")
	router.HandleFunc("/dogs/{id}", handler.Delete).Methods("DELETE")
}

func (handler *DogHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "DogHandler.Create")
	defer span.End()

	var request domain.DogRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		handler.logger.Warnf("create dog: %v", err)
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

func (handler *DogHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "DogHandler.GetAll")
	defer span.End()

	responses, err := handler.service.GetAll(ctx)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, responses)
}

func (handler *DogHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "DogHandler.Get")
	defer span.End()

	response, err := handler.service.Get(ctx, mux.Vars(req)["id"])
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, response)
}

func (handler *DogHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "DogHandler.Update")
	defer span.End()

	var update domain.DogUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeBadRequest(writer, "Invalid input: could not parse JSON payload.")
		return
	}
	id, err := handler.service.Update(ctx, mux.Vars(req)["id"], &update)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeMessage(writer, fmt.Sprintf("Dog Update Successful: %s", id))
}

func (handler *DogHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "DogHandler.Delete")
	defer span.End()

	id, err := handler.service.Delete(ctx, mux.Vars(req)["id"])
	if err != nil {
		writeError(writer, err)
		return
	}
	writeMessage(writer, fmt.Sprintf("Dog Deleted: %s", id))
}
