package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"rentride_service/authorization"
	"rentride_service/domain"
	"rentride_service/errors"
	application "rentride_service/service"
)

type stubCarStore struct {
	cars map[primitive.ObjectID]*domain.Car
}

func (store *stubCarStore) Insert(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	car.ID = primitive.NewObjectID()
	store.cars[car.ID] = car
	return car, nil
}

func (store *stubCarStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Car, error) {
	return store.cars[id], nil
}

func (store *stubCarStore) GetAll(ctx context.Context, filter *domain.CarFilter) ([]*domain.Car, error) {
	matched := []*domain.Car{}
	for _, car := range store.cars {
		if filter == nil || filter.Matches(car) {
			matched = append(matched, car)
		}
	}
	return matched, nil
}

func (store *stubCarStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Car, error) {
	return nil, nil
}

func (store *stubCarStore) Update(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	store.cars[car.ID] = car
	return car, nil
}

func (store *stubCarStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := store.cars[id]; !ok {
		return errors.ErrNotFound
	}
	delete(store.cars, id)
	return nil
}

func (store *stubCarStore) Count(ctx context.Context) (int64, error) {
	return int64(len(store.cars)), nil
}

func newCarTestRouter(t *testing.T) (*mux.Router, *stubCarStore) {
	t.Helper()

	store := &stubCarStore{cars: map[primitive.ObjectID]*domain.Car{}}
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	service := application.NewCarService(store, nil, tracer)
	handler := NewCarHandler(service, log.New(os.Stdout, "[test] ", log.LstdFlags), tracer)

	router := mux.NewRouter()
	router.HandleFunc("/cars", handler.GetAll).Methods(http.MethodGet)
	router.HandleFunc("/cars/{id}", handler.Get).Methods(http.MethodGet)

	return router, store
}

func TestCarHandlerGetStatusCodes(t *testing.T) {
	router, store := newCarTestRouter(t)

	car, err := store.Insert(context.Background(), &domain.Car{
		Brand:       "Tesla",
		Model:       "Model 3",
		PricePerDay: 75,
		Type:        "sedan",
		Seats:       5,
		FuelType:    "electric",
		Available:   true,
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"found", "/cars/" + car.ID.Hex(), http.StatusOK},
		{"bad id", "/cars/not-a-hex-id", http.StatusBadRequest},
		{"missing", "/cars/" + primitive.NewObjectID().Hex(), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestCarHandlerCreateSetsStatusAndContentType(t *testing.T) {
	_, store := newCarTestRouter(t)
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	service := application.NewCarService(store, nil, tracer)
	handler := NewCarHandler(service, log.New(os.Stdout, "[test] ", log.LstdFlags), tracer)

	router := mux.NewRouter()
	createRouter := router.Methods(http.MethodPost).Subrouter()
	createRouter.HandleFunc("/cars", handler.Create)
	createRouter.Use(handler.MiddlewareCarDeserialization)
	createRouter.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			ctx := authorization.ContextWithPrincipal(req.Context(), authorization.Principal{
				ID:    primitive.NewObjectID(),
				Email: "admin@rentride.com",
				Role:  "admin",
			})
			next.ServeHTTP(writer, req.WithContext(ctx))
		})
	})

	body := strings.NewReader(`{"brand":"Volkswagen","model":"Jetta","type":"sedan","seats":5,"fuelType":"petrol","pricePerDay":40,"available":true}`)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/cars", body))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
}

func TestCarHandlerListFiltered(t *testing.T) {
	router, store := newCarTestRouter(t)

	_, err := store.Insert(context.Background(), &domain.Car{
		Brand: "Tesla", Model: "Model 3", PricePerDay: 75, Type: "sedan",
		Seats: 5, FuelType: "electric", Available: true,
	})
	require.NoError(t, err)
	_, err = store.Insert(context.Background(), &domain.Car{
		Brand: "Toyota", Model: "Camry", PricePerDay: 45, Type: "sedan",
		Seats: 5, FuelType: "hybrid", Available: true,
	})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/cars?fuelType=electric&seats=5", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Cars []domain.Car `json:"cars"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	require.Len(t, body.Cars, 1)
	assert.Equal(t, "Model 3", body.Cars[0].Model)
}
