package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarStore interface {
	Insert(ctx context.Context, car *Car) (*Car, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Car, error)
	GetAll(ctx context.Context, filter *CarFilter) ([]*Car, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Car, error)
	Update(ctx context.Context, car *Car) (*Car, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
