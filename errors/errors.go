package errors

import "errors"

const (
	MissingFieldsError     = "Missing required fields"
	InvalidCarIDError      = "Invalid car ID"
	InvalidBookingIDError  = "Invalid booking ID"
	InvalidDateRangeError  = "End date must be after start date"
	InvalidStatusError     = "Invalid status"
	InvalidCredentials     = "Invalid email or password"
	EmailAlreadyExist      = "Email already registered"
	BlockedAccountError    = "Your account has been blocked"
	AdminAccessRequired    = "Admin access required"
	CarNotFoundError       = "Car not found"
	BookingNotFoundError   = "Booking not found"
	UserNotFoundError      = "User not found"
	CarsAlreadySeededError = "Cars already exist. Delete existing cars first."
	UnauthorizedError      = "Authorization required"
	ForbiddenError         = "Access denied"
	InternalServerError    = "Internal server error"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidRange   = errors.New("invalid date range")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInternal       = errors.New("internal error")
)
