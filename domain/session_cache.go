package domain

import "context"

type SessionCache interface {
	PostSession(ctx context.Context, tokenID string, userID string) error
	GetSession(ctx context.Context, tokenID string) (string, error)
	DelSession(ctx context.Context, tokenID string) error
}
