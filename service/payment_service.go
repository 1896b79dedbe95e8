package application

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/authorization"
	"rentride_service/domain"
	"rentride_service/errors"
)

type PaymentService struct {
	payments domain.PaymentStore
	bookings domain.BookingStore
	mailer   Mailer
	cb       *gobreaker.CircuitBreaker
	tracer   trace.Tracer
}

func NewPaymentService(payments domain.PaymentStore, bookings domain.BookingStore, mailer Mailer, tracer trace.Tracer) *PaymentService {
	return &PaymentService{
		payments: payments,
		bookings: bookings,
		mailer:   mailer,
		cb:       CircuitBreaker("paymentGateway"),
		tracer:   tracer,
	}
}

type DummyPaymentRequest struct {
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
	Success   bool    `json:"success"`
}

// Process runs the dummy charge and records the attempt. A successful charge
// also confirms the booking in this same call, so a confirmed booking always
// has a success record behind it. A failed charge leaves the booking as is.
func (service *PaymentService) Process(ctx context.Context, principal authorization.Principal, request *DummyPaymentRequest) (*domain.Payment, error) {
	ctx, span := service.tracer.Start(ctx, "PaymentService.Process")
	defer span.End()

	if request.BookingID == "" || request.Amount <= 0 {
		return nil, errors.ErrInvalidRequest
	}

	bookingID, err := primitive.ObjectIDFromHex(request.BookingID)
	if err != nil {
		return nil, errors.ErrInvalidRequest
	}

	booking, err := service.bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.ErrNotFound
	}

	if !principal.IsAdmin() && booking.UserID != principal.ID {
		return nil, errors.ErrForbidden
	}

	// Circuit breaker for the (dummy) payment gateway
	result, breakerErr := service.cb.Execute(func() (interface{}, error) {
		return chargeDummy(request), nil
	})
	if breakerErr != nil {
		log.Printf("Circuit breaker error: %v", breakerErr)
		return nil, errors.ErrInternal
	}

	status := domain.PaymentFailed
	if result.(bool) {
		status = domain.PaymentSuccess
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		BookingID: booking.ID.Hex(),
		Amount:    request.Amount,
		Status:    status,
		CreatedAt: time.Now(),
	}

	if err := service.payments.Insert(ctx, payment); err != nil {
		return nil, err
	}

	if status == domain.PaymentSuccess {
		booking, err = service.bookings.UpdateStatus(ctx, booking.ID, domain.BookingConfirmed)
		if err != nil {
			return nil, err
		}

		if service.mailer != nil {
			if err := service.mailer.SendBookingConfirmation(principal.Email, booking); err != nil {
				log.Printf("confirmation mail not sent: %v", err)
			}
		}
	}

	return payment, nil
}

func (service *PaymentService) History(ctx context.Context, principal authorization.Principal, bookingID string) ([]*domain.Payment, error) {
	ctx, span := service.tracer.Start(ctx, "PaymentService.History")
	defer span.End()

	id, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, errors.ErrInvalidRequest
	}

	booking, err := service.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.ErrNotFound
	}

	if !principal.IsAdmin() && booking.UserID != principal.ID {
		return nil, errors.ErrForbidden
	}

	return service.payments.GetByBooking(ctx, booking.ID.Hex())
}

// chargeDummy stands in for a gateway call. No money moves anywhere.
func chargeDummy(request *DummyPaymentRequest) bool {
	return request.Success
}

func CircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Printf("Circuit Breaker '%s' changed from '%s' to '%s'\n", name, from, to)
			},
		},
	)
}
