package domain

import "context"

type PaymentStore interface {
	Insert(ctx context.Context, payment *Payment) error
	GetByBooking(ctx context.Context, bookingID string) ([]*Payment, error)
}
