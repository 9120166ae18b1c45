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

type BookingHandler struct {
	service *application.BookingService
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewBookingHandler(service *application.BookingService, tracer trace.Tracer, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *BookingHandler) Init(router *mux.Router) {
	router.HandleFunc("/bookings", handler.Create).Methods("POST")
	router.HandleFunc("/bookings", handler.GetAll).Methods("GET")
	router.HandleFunc("/bookings/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/bookings/{id}", handler.Update).Methods("PUT")
	router.HandleFunc("/bookings/{id}", handler.Delete).Methods("DELETE")
}

func (handler *BookingHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Create")
	defer span.End()

	var request domain.BookingRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		handler.logger.Warnf("create booking: %v", err)
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

func (handler *BookingHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetAll")
	defer span.End()

	responses, err := handler.service.GetAll(ctx)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, responses)
}

func (handler *BookingHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Get")
	defer span.End()

	response, err := handler.service.Get(ctx, mux.Vars(req)["id"])
	if err != nil {
		writeError(writer, err)
		return
	}
	writeSuccess(writer, response)
}

func (handler *BookingHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Update")
	defer span.End()

	var update domain.BookingUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&update); err != nil {
		writeBadRequest(writer, "Invalid input: could not parse JSON payload.")
		return
	}
	id, err := handler.service.Update(ctx, mux.Vars(req)["id"], &update)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeMessage(writer, fmt.Sprintf("Booking Update Successful: %s", id))
}

func (handler *BookingHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Delete")
	defer span.End()

	id, err := handler.service.Delete(ctx, mux.Vars(req)["id"])
	if err != nil {
		writeError(writer, err)
		return
	}
	writeMessage(writer, fmt.Sprintf("Booking Deleted: %s", id))
}
