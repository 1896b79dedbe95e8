package handlers

import (
	"context"
	errorsx "errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"rentride_service/domain"
	"rentride_service/errors"
	"rentride_service/service"
)

type CarHandler struct {
	service *application.CarService
	logger  *log.Logger
	tracer  trace.Tracer
}

func NewCarHandler(service *application.CarService, logger *log.Logger, tracer trace.Tracer) *CarHandler {
	return &CarHandler{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (handler *CarHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CarHandler.GetAll")
	defer span.End()

	filter := filterFromQuery(req)

	cars, err := handler.service.GetAll(ctx, &filter)
	if err != nil {
		handler.logger.Println("Listing cars failed:", err)
		messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{"cars": cars})
}

func (handler *CarHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CarHandler.Get")
	defer span.End()

	vars := mux.Vars(req)

	car, err := handler.service.Get(ctx, vars["id"])
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.InvalidCarIDError)
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.CarNotFoundError)
		default:
			handler.logger.Println("Getting car failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{"car": car})
}

func (handler *CarHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CarHandler.Create")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	car := req.Context().Value(KeyProduct{}).(*domain.Car)

	created, err := handler.service.Create(ctx, principal, car)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrForbidden):
			messageResponse(writer, http.StatusForbidden, errors.AdminAccessRequired)
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		default:
			handler.logger.Println("Creating car failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusCreated, map[string]interface{}{
		"message": "Car added successfully",
		"car":     created,
	})
}

func (handler *CarHandler) Update(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CarHandler.Update")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	vars := mux.Vars(req)
	car := req.Context().Value(KeyProduct{}).(*domain.Car)

	updated, err := handler.service.Update(ctx, principal, vars["id"], car)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrForbidden):
			messageResponse(writer, http.StatusForbidden, errors.AdminAccessRequired)
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.InvalidCarIDError)
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.CarNotFoundError)
		default:
			handler.logger.Println("Updating car failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{
		"message": "Car updated successfully",
		"car":     updated,
	})
}

func (handler *CarHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CarHandler.Delete")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	vars := mux.Vars(req)

	err := handler.service.Delete(ctx, principal, vars["id"])
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrForbidden):
			messageResponse(writer, http.StatusForbidden, errors.AdminAccessRequired)
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.InvalidCarIDError)
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.CarNotFoundError)
		default:
			handler.logger.Println("Deleting car failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	messageResponse(writer, http.StatusOK, "Car deleted successfully")
}

func (handler *CarHandler) Recommend(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CarHandler.Recommend")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	cars, err := handler.service.Recommend(ctx, principal)
	if err != nil {
		handler.logger.Println("Recommending cars failed:", err)
		messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{"cars": cars})
}

func (handler *CarHandler) SeedCars(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "CarHandler.SeedCars")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	count, err := handler.service.SeedCars(ctx, principal)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrForbidden):
			messageResponse(writer, http.StatusForbidden, errors.AdminAccessRequired)
		case errorsx.Is(err, errors.ErrAlreadyExists):
			messageResponse(writer, http.StatusBadRequest, errors.CarsAlreadySeededError)
		default:
			handler.logger.Println("Seeding cars failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusCreated, map[string]interface{}{
		"message": "Cars seeded successfully",
		"count":   count,
	})
}

func (handler *CarHandler) MiddlewareCarDeserialization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		car := &domain.Car{}
		err := car.FromJSON(req.Body)
		if err != nil {
			http.Error(writer, "Unable to decode json", http.StatusBadRequest)
			handler.logger.Println(err)
			return
		}

		ctx := context.WithValue(req.Context(), KeyProduct{}, car)
		req = req.WithContext(ctx)

		next.ServeHTTP(writer, req)
	})
}

func filterFromQuery(req *http.Request) domain.CarFilter {
	query := req.URL.Query()

	filter := domain.CarFilter{
		Brand:    query.Get("brand"),
		FuelType: query.Get("fuelType"),
	}

	if value := query.Get("minPrice"); value != "" {
		if price, err := strconv.ParseFloat(value, 64); err == nil {
			filter.MinPrice = price
		}
	}
	if value := query.Get("maxPrice"); value != "" {
		if price, err := strconv.ParseFloat(value, 64); err == nil {
			filter.MaxPrice = price
		}
	}
	if value := query.Get("seats"); value != "" {
		if seats, err := strconv.Atoi(value); err == nil {
			filter.MinSeats = seats
		}
	}

	return filter
}
