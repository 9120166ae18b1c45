package startup

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"dogwalking_service/handlers"
	application "dogwalking_service/service"
	"dogwalking_service/startup/config"
	"dogwalking_service/store"
)

type Server struct {
	config *config.Config
}

var Logger = logrus.New()

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func initLogger(logFilePath string) {
	writer, err := rotatelogs.New(
		logFilePath+"_%Y%m%d",
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		Logger.Warnf("Failed to create rotatelogs writer, logging to stdout only: %v", err)
		return
	}
	Logger.SetOutput(io.MultiWriter(os.Stdout, writer))
}

func (server *Server) Start() {

	initLogger(server.config.LogFilePath)

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
		},
	}

	mongoClient := server.initMongoClient(httpClient)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		if err := mongoClient.Disconnect(ctx); err != nil {
			Logger.Errorf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	ctx := context.Background()
	tp := server.initTraceProvider()
	defer func() { _ = tp.Shutdown(ctx) }()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("dogwalking_service")
	otel.SetTextMapPropagator(propagation.TraceContext{})

	ownerStore := store.NewOwnerMongoDBStore(mongoClient, tracer, Logger)
	dogStore := store.NewDogMongoDBStore(mongoClient, tracer, Logger)
	sitterStore := store.NewSitterMongoDBStore(mongoClient, tracer, Logger)
	bookingStore := store.NewBookingMongoDBStore(mongoClient, tracer, Logger)

	ownerService := application.NewOwnerService(ownerStore, tracer, Logger)
	dogService := application.NewDogService(dogStore, ownerStore, server.config.ValidateOwnerRefs, tracer, Logger)
	sitterService := application.NewSitterService(sitterStore, tracer, Logger)
	bookingService := application.NewBookingService(bookingStore, ownerStore, server.config.ValidateOwnerRefs, tracer, Logger)

	ownerHandler := handlers.NewOwnerHandler(ownerService, tracer, Logger)
	dogHandler := handlers.NewDogHandler(dogService, tracer, Logger)
	sitterHandler := handlers.NewSitterHandler(sitterService, tracer, Logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, tracer, Logger)

	server.start(ownerHandler, dogHandler, sitterHandler, bookingHandler)
}

func (server *Server) initMongoClient(httpClient *http.Client) *mongo.Client {
	client, err := store.Connect(server.config, httpClient)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initTraceProvider() *sdktrace.TracerProvider {
	if server.config.JaegerAddress == "" {
		return newTraceProvider(nil)
	}
	exp, err := newExporter(server.config.JaegerAddress)
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}
	return newTraceProvider(exp)
}

func (server *Server) start(ownerHandler *handlers.OwnerHandler, dogHandler *handlers.DogHandler, sitterHandler *handlers.SitterHandler, bookingHandler *handlers.BookingHandler) {
	router := mux.NewRouter()
	router.Use(handlers.MiddlewareContentTypeSet)
	router.Use(handlers.MiddlewareRequestLog(Logger))

	router.HandleFunc("/", handlers.Health).Methods("GET")
	ownerHandler.Init(router)
	dogHandler.Init(router)
	sitterHandler.Init(router)
	bookingHandler.Init(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: router,
	}

	wait := time.Second * 15
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)

	signal.Notify(c, os.Interrupt)
	signal.Notify(c, syscall.SIGTERM)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Error Shutting Down Server %s", err)
	}
	log.Println("Server Gracefully Stopped")
}

func newExporter(address string) (*jaeger.Exporter, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(address)))
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func newTraceProvider(exp sdktrace.SpanExporter) *sdktrace.TracerProvider {
	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("dogwalking_service"),
		),
	)
	if err != nil {
		panic(err)
	}

	if exp == nil {
		return sdktrace.NewTracerProvider(sdktrace.WithResource(r))
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}
