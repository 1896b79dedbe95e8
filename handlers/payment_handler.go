package handlers

import (
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

type PaymentHandler struct {
	service *application.PaymentService
	logger  *log.Logger
	tracer  trace.Tracer
}

func NewPaymentHandler(service *application.PaymentService, logger *log.Logger, tracer trace.Tracer) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (handler *PaymentHandler) Process(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PaymentHandler.Process")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	var request application.DummyPaymentRequest
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		return
	}

	payment, err := handler.service.Process(ctx, principal, &request)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.BookingNotFoundError)
		case errorsx.Is(err, errors.ErrForbidden):
			messageResponse(writer, http.StatusForbidden, errors.ForbiddenError)
		default:
			handler.logger.Println("Processing payment failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	message := "Payment failed"
	if payment.Status == domain.PaymentSuccess {
		message = "Payment successful"
	}

	jsonResponse(writer, http.StatusCreated, map[string]interface{}{
		"message": message,
		"success": payment.Status == domain.PaymentSuccess,
		"payment": payment,
	})
}

func (handler *PaymentHandler) History(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PaymentHandler.History")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	vars := mux.Vars(req)

	payments, err := handler.service.History(ctx, principal, vars["bookingId"])
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.InvalidBookingIDError)
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.BookingNotFoundError)
		case errorsx.Is(err, errors.ErrForbidden):
			messageResponse(writer, http.StatusForbidden, errors.ForbiddenError)
		default:
			handler.logger.Println("Listing payments failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{"payments": payments})
}
