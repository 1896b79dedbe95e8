package startup

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/casbin/casbin"
	"github.com/go-redis/redis"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"

	"rentride_service/authorization"
	"rentride_service/casbinAuthorization"
	"rentride_service/domain"
	"rentride_service/handlers"
	application "rentride_service/service"
	"rentride_service/startup/config"
	"rentride_service/store"
)

type Server struct {
	config *config.Config
}

var Logger = logrus.New()

const (
	LogFilePath = "/app/logs/rentride.log"
)

type CustomFormatter struct{}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Data["id"] = generateUniqueID()

	msg := fmt.Sprintf("[%s] [%s] [%s] %s\n",
		entry.Time.Format("2006-01-02T15:04:05Z07:00"),
		entry.Level,
		entry.Data["id"],
		entry.Message,
	)

	return []byte(msg), nil
}

func generateUniqueID() string {
	return fmt.Sprintf("ID-%d", time.Now().UnixNano())
}

func initLogger() {
	writer, err := rotatelogs.New(
		LogFilePath+"_%Y%m%d%H%M",
		rotatelogs.WithRotationTime(3*time.Minute),
	)
	if err != nil {
		Logger.Fatalf("Failed to create rotatelogs hook: %v", err)
	}
	Logger.SetOutput(writer)

	Logger.SetFormatter(&CustomFormatter{})
}

func NewServer(config *config.Config) *Server {
	return &Server{
		config: config,
	}
}

func (server *Server) Start() {

	initLogger()

	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			MaxConnsPerHost:     10,
		},
	}

	mongoClient := server.initMongoClient(httpClient)
	defer func(mongoClient *mongo.Client, ctx context.Context) {
		err := mongoClient.Disconnect(ctx)
		if err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}(mongoClient, context.Background())

	ctx := context.Background()
	exp, err := newExporter(server.config.JaegerAddress)
	if err != nil {
		log.Fatalf("Failed to Initialize Exporter: %v", err)
	}

	tp := newTraceProvider(exp)
	defer func() { _ = tp.Shutdown(ctx) }()
	otel.SetTracerProvider(tp)
	tracer := tp.Tracer("rentride_service")
	otel.SetTextMapPropagator(propagation.TraceContext{})

	storeLogger := log.New(os.Stdout, "[rentride-store] ", log.LstdFlags)
	apiLogger := log.New(os.Stdout, "[rentride-api] ", log.LstdFlags)

	redisClient := server.initRedisClient()
	neo4jDriver := server.initNeo4JDriver()
	defer func() { _ = neo4jDriver.Close(ctx) }()

	userStore := server.initUserStore(mongoClient, tracer)
	carStore := server.initCarStore(mongoClient, tracer)
	bookingStore := server.initBookingStore(mongoClient, tracer)
	sessionCache := server.initSessionCache(redisClient, tracer)
	recommendationStore := server.initRecommendationStore(&neo4jDriver, tracer)

	paymentStore, err := store.NewPaymentCassandraStore(server.config.PaymentDBHost, storeLogger, tracer)
	if err != nil {
		log.Fatal(err)
	}
	defer paymentStore.CloseSession()
	paymentStore.CreateTables()

	mailer := server.initMailer()

	authService := application.NewAuthService(userStore, sessionCache, tracer)
	userService := application.NewUserService(userStore, tracer)
	carService := application.NewCarService(carStore, recommendationStore, tracer)
	bookingService := application.NewBookingService(bookingStore, carStore, recommendationStore, tracer)
	paymentService := application.NewPaymentService(paymentStore, bookingStore, mailer, tracer)

	authHandler := handlers.NewAuthHandler(authService, apiLogger, tracer)
	userHandler := handlers.NewUserHandler(userService, apiLogger, tracer)
	carHandler := handlers.NewCarHandler(carService, apiLogger, tracer)
	bookingHandler := handlers.NewBookingHandler(bookingService, apiLogger, tracer)
	paymentHandler := handlers.NewPaymentHandler(paymentService, apiLogger, tracer)

	authenticator := authorization.NewAuthenticator(userStore, sessionCache, apiLogger)

	server.start(authenticator, authHandler, userHandler, carHandler, bookingHandler, paymentHandler)
}

func (server *Server) initMongoClient(httpClient *http.Client) *mongo.Client {
	client, err := store.GetClientWithHTTPConfig(server.config.RentDBHost, server.config.RentDBPort, httpClient)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initRedisClient() *redis.Client {
	client, err := store.GetRedisClient(server.config.SessionCacheHost, server.config.SessionCachePort)
	if err != nil {
		log.Fatal(err)
	}
	return client
}

func (server *Server) initNeo4JDriver() neo4j.DriverWithContext {
	driver, err := store.GetNeo4JDriver(
		server.config.RecommendationDBHost,
		server.config.RecommendationDBPort,
		server.config.RecommendationDBUser,
		server.config.RecommendationDBPass,
	)
	if err != nil {
		log.Fatal(err)
	}
	return driver
}

func (server *Server) initUserStore(client *mongo.Client, tracer trace.Tracer) domain.UserStore {
	return store.NewUserMongoDBStore(client, tracer)
}

func (server *Server) initCarStore(client *mongo.Client, tracer trace.Tracer) domain.CarStore {
	return store.NewCarMongoDBStore(client, tracer)
}

func (server *Server) initBookingStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	return store.NewBookingMongoDBStore(client, tracer)
}

func (server *Server) initSessionCache(client *redis.Client, tracer trace.Tracer) domain.SessionCache {
	return store.NewSessionRedisCache(client, tracer)
}

func (server *Server) initRecommendationStore(driver *neo4j.DriverWithContext, tracer trace.Tracer) domain.RecommendationStore {
	return store.NewRecommendationNeo4JStore(driver, tracer)
}

func (server *Server) initMailer() application.Mailer {
	smtpPort, err := strconv.Atoi(server.config.SMTPPort)
	if err != nil {
		smtpPort = 587
	}
	return application.NewGomailSender(server.config.SMTPServer, smtpPort, server.config.SMTPEmail, server.config.SMTPPassword)
}

func (server *Server) start(
	authenticator *authorization.Authenticator,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	carHandler *handlers.CarHandler,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	router := mux.NewRouter()
	router.Use(MiddlewareContentTypeSet)

	enforcer, err := casbin.NewEnforcerSafe("./rbac_model.conf", "./policy.csv")
	if err != nil {
		log.Fatal("Failed to load authorization policy:", err)
	}
	router.Use(casbinAuthorization.CasbinMiddleware(enforcer, Logger))

	router.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/seed/admin", userHandler.SeedAdmin).Methods(http.MethodPost)
	router.HandleFunc("/cars", carHandler.GetAll).Methods(http.MethodGet)

	authenticated := router.NewRoute().Subrouter()
	authenticated.Use(authenticator.Middleware)

	authenticated.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	authenticated.HandleFunc("/profile", userHandler.GetProfile).Methods(http.MethodGet)
	authenticated.HandleFunc("/profile", userHandler.UpdateProfile).Methods(http.MethodPut)
	authenticated.HandleFunc("/cars/recommended", carHandler.Recommend).Methods(http.MethodGet)

	createCar := authenticated.Methods(http.MethodPost).Subrouter()
	createCar.HandleFunc("/cars", carHandler.Create)
	createCar.Use(carHandler.MiddlewareCarDeserialization)

	updateCar := authenticated.Methods(http.MethodPut).Subrouter()
	updateCar.HandleFunc("/cars/{id}", carHandler.Update)
	updateCar.Use(carHandler.MiddlewareCarDeserialization)

	authenticated.HandleFunc("/cars/{id}", carHandler.Delete).Methods(http.MethodDelete)

	createBooking := authenticated.Methods(http.MethodPost).Subrouter()
	createBooking.HandleFunc("/bookings", bookingHandler.Create)
	createBooking.Use(bookingHandler.MiddlewareBookingDeserialization)

	authenticated.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	authenticated.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods(http.MethodGet)
	authenticated.HandleFunc("/bookings/{id}", bookingHandler.UpdateStatus).Methods(http.MethodPut)
	authenticated.HandleFunc("/bookings/{id}", bookingHandler.Cancel).Methods(http.MethodDelete)

	authenticated.HandleFunc("/payments/dummy", paymentHandler.Process).Methods(http.MethodPost)
	authenticated.HandleFunc("/payments/{bookingId}", paymentHandler.History).Methods(http.MethodGet)

	authenticated.HandleFunc("/seed/cars", carHandler.SeedCars).Methods(http.MethodPost)

	router.HandleFunc("/cars/{id}", carHandler.Get).Methods(http.MethodGet)

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", server.config.Port),
		Handler: cors(router),
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

func MiddlewareContentTypeSet(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		rw.Header().Add("Content-Type", "application/json")
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.Header().Set("X-Frame-Options", "DENY")

		next.ServeHTTP(rw, h)
	})
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
			semconv.ServiceNameKey.String("rentride_service"),
		),
	)

	if err != nil {
		panic(err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(r),
	)
}
