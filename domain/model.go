package domain

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Password       string             `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Role           UserRole           `bson:"role" json:"role"`
	Blocked        bool               `bson:"blocked" json:"blocked"`
	DrivingLicense string             `bson:"drivingLicense,omitempty" json:"drivingLicense,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Car struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	Model       string             `bson:"model" json:"model" validate:"required"`
	PricePerDay float64            `bson:"pricePerDay" json:"pricePerDay" validate:"required,gt=0"`
	Type        string             `bson:"type" json:"type" validate:"required"`
	Seats       int                `bson:"seats" json:"seats" validate:"required,gt=0"`
	FuelType    string             `bson:"fuelType" json:"fuelType" validate:"required"`
	Images      []string           `bson:"images" json:"images"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func ValidBookingStatus(status BookingStatus) bool {
	switch status {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	CarID      primitive.ObjectID `bson:"carId" json:"carId"`
	StartDate  time.Time          `bson:"startDate" json:"startDate"`
	EndDate    time.Time          `bson:"endDate" json:"endDate"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	Status     BookingStatus      `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"bookingId"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// CarFilter holds the optional catalog search predicates. Zero values mean
// "no constraint"; listings with available=false never match.
type CarFilter struct {
	Brand    string
	FuelType string
	MinPrice float64
	MaxPrice float64
	MinSeats int
}

func (filter *CarFilter) Matches(car *Car) bool {
	if !car.Available {
		return false
	}
	if filter.Brand != "" && !strings.Contains(strings.ToLower(car.Brand), strings.ToLower(filter.Brand)) {
		return false
	}
	if filter.FuelType != "" && car.FuelType != filter.FuelType {
		return false
	}
	if filter.MinPrice > 0 && car.PricePerDay < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && car.PricePerDay > filter.MaxPrice {
		return false
	}
	if filter.MinSeats > 0 && car.Seats < filter.MinSeats {
		return false
	}
	return true
}

func (user *User) ValidateUser() error {
	validate := validator.New()
	return validate.Struct(user)
}

func (car *Car) ValidateCar() error {
	validate := validator.New()
	return validate.Struct(car)
}

func (car *Car) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(car)
}
