package domain

import "context"

type RecommendationStore interface {
	CreateCar(ctx context.Context, carID string, brand string, model string) error
	DeleteCar(ctx context.Context, carID string) error
	CreateBooked(ctx context.Context, userID string, carID string) error
	RecommendForUser(ctx context.Context, userID string) ([]string, error)
}
