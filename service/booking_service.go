package application

import (
	"context"
	"log"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/authorization"
	"rentride_service/domain"
	"rentride_service/errors"
)

type BookingService struct {
	bookings        domain.BookingStore
	cars            domain.CarStore
	recommendations domain.RecommendationStore
	tracer          trace.Tracer
}

func NewBookingService(bookings domain.BookingStore, cars domain.CarStore, recommendations domain.RecommendationStore, tracer trace.Tracer) *BookingService {
	return &BookingService{
		bookings:        bookings,
		cars:            cars,
		recommendations: recommendations,
		tracer:          tracer,
	}
}

type CreateBookingRequest struct {
	CarID     string `json:"carId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Create validates the car and date range, derives the price and persists a
// pending booking. The price is pricePerDay times the day count, where the
// day count rounds the span up to whole days. Overlapping bookings for the
// same car are accepted.
func (service *BookingService) Create(ctx context.Context, principal authorization.Principal, request *CreateBookingRequest) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Create")
	defer span.End()

	if request.CarID == "" || request.StartDate == "" || request.EndDate == "" {
		return nil, errors.ErrInvalidRequest
	}

	carID, err := primitive.ObjectIDFromHex(request.CarID)
	if err != nil {
		return nil, errors.ErrInvalidRequest
	}

	car, err := service.cars.Get(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.ErrNotFound
	}

	start, err := parseDate(request.StartDate)
	if err != nil {
		return nil, errors.ErrInvalidRequest
	}
	end, err := parseDate(request.EndDate)
	if err != nil {
		return nil, errors.ErrInvalidRequest
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days <= 0 {
		return nil, errors.ErrInvalidRange
	}

	booking := &domain.Booking{
		UserID:     principal.ID,
		CarID:      carID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: car.PricePerDay * float64(days),
		Status:     domain.BookingPending,
		CreatedAt:  time.Now(),
	}

	booking, err = service.bookings.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}

	if service.recommendations != nil {
		if err := service.recommendations.CreateBooked(ctx, principal.ID.Hex(), carID.Hex()); err != nil {
			log.Println("recommendation edge not created:", err)
		}
	}

	return booking, nil
}

func (service *BookingService) List(ctx context.Context, principal authorization.Principal) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.List")
	defer span.End()

	if principal.IsAdmin() {
		return service.bookings.GetAll(ctx)
	}
	return service.bookings.GetByUser(ctx, principal.ID)
}

func (service *BookingService) Get(ctx context.Context, principal authorization.Principal, id string) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Get")
	defer span.End()

	booking, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.IsAdmin() && booking.UserID != principal.ID {
		return nil, errors.ErrForbidden
	}

	return booking, nil
}

// UpdateStatus sets the booking status. Only admins may do this; no state
// machine guards the transition itself.
func (service *BookingService) UpdateStatus(ctx context.Context, principal authorization.Principal, id string, status domain.BookingStatus) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.UpdateStatus")
	defer span.End()

	if !domain.ValidBookingStatus(status) {
		return nil, errors.ErrInvalidRequest
	}

	booking, err := service.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !principal.IsAdmin() {
		return nil, errors.ErrForbidden
	}

	return service.bookings.UpdateStatus(ctx, booking.ID, status)
}

// Cancel deletes the booking outright. Allowed for the booking owner and for
// admins; a second cancel reports not found.
func (service *BookingService) Cancel(ctx context.Context, principal authorization.Principal, id string) error {
	ctx, span := service.tracer.Start(ctx, "BookingService.Cancel")
	defer span.End()

	booking, err := service.find(ctx, id)
	if err != nil {
		return err
	}

	if !principal.IsAdmin() && booking.UserID != principal.ID {
		return errors.ErrForbidden
	}

	return service.bookings.Delete(ctx, booking.ID)
}

func (service *BookingService) find(ctx context.Context, id string) (*domain.Booking, error) {
	bookingID, err := primitive.ObjectIDFromHex(id)
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

	return booking, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
