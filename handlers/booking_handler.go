package handlers

import (
	"context"
	"encoding/json"
	errorsx "errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"

	"rentride_service/domain"
	"rentride_service/errors"
	"rentride_service/service"
)

type BookingHandler struct {
	service *application.BookingService
	logger  *log.Logger
	tracer  trace.Tracer
}

func NewBookingHandler(service *application.BookingService, logger *log.Logger, tracer trace.Tracer) *BookingHandler {
	return &BookingHandler{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

type updateStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

func (handler *BookingHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Create")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	request := req.Context().Value(KeyProduct{}).(*application.CreateBookingRequest)

	booking, err := handler.service.Create(ctx, principal, request)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrInvalidRange):
			messageResponse(writer, http.StatusBadRequest, errors.InvalidDateRangeError)
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.CarNotFoundError)
		default:
			handler.logger.Println("Creating booking failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusCreated, map[string]interface{}{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

func (handler *BookingHandler) List(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.List")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	bookings, err := handler.service.List(ctx, principal)
	if err != nil {
		handler.logger.Println("Listing bookings failed:", err)
		messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{"bookings": bookings})
}

func (handler *BookingHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Get")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	vars := mux.Vars(req)

	booking, err := handler.service.Get(ctx, principal, vars["id"])
	if err != nil {
		handler.writeBookingError(writer, err, "Getting booking failed:")
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{"booking": booking})
}

func (handler *BookingHandler) UpdateStatus(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.UpdateStatus")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	var request updateStatusRequest
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		messageResponse(writer, http.StatusBadRequest, errors.InvalidStatusError)
		return
	}

	vars := mux.Vars(req)

	booking, err := handler.service.UpdateStatus(ctx, principal, vars["id"], request.Status)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.InvalidStatusError)
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.BookingNotFoundError)
		case errorsx.Is(err, errors.ErrForbidden):
			messageResponse(writer, http.StatusForbidden, errors.AdminAccessRequired)
		default:
			handler.logger.Println("Updating booking status failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{
		"message": "Booking updated successfully",
		"booking": booking,
	})
}

func (handler *BookingHandler) Cancel(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Cancel")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	vars := mux.Vars(req)

	err := handler.service.Cancel(ctx, principal, vars["id"])
	if err != nil {
		handler.writeBookingError(writer, err, "Cancelling booking failed:")
		return
	}

	messageResponse(writer, http.StatusOK, "Booking cancelled successfully")
}

func (handler *BookingHandler) writeBookingError(writer http.ResponseWriter, err error, logPrefix string) {
	switch {
	case errorsx.Is(err, errors.ErrInvalidRequest):
		messageResponse(writer, http.StatusBadRequest, errors.InvalidBookingIDError)
	case errorsx.Is(err, errors.ErrNotFound):
		messageResponse(writer, http.StatusNotFound, errors.BookingNotFoundError)
	case errorsx.Is(err, errors.ErrForbidden):
		messageResponse(writer, http.StatusForbidden, errors.ForbiddenError)
	default:
		handler.logger.Println(logPrefix, err)
		messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
	}
}

func (handler *BookingHandler) MiddlewareBookingDeserialization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		request := &application.CreateBookingRequest{}
		err := json.NewDecoder(req.Body).Decode(request)
		if err != nil {
			http.Error(writer, "Unable to decode json", http.StatusBadRequest)
			handler.logger.Println(err)
			return
		}

		ctx := context.WithValue(req.Context(), KeyProduct{}, request)
		req = req.WithContext(ctx)

		next.ServeHTTP(writer, req)
	})
}
