package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	Register(ctx context.Context, user *User) (*User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) (*User, error)
}
