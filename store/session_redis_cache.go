package store

import (
	"context"
	"log"

	"github.com/go-redis/redis"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/authorization"
	"rentride_service/domain"
)

type SessionRedisCache struct {
	client *redis.Client
	tracer trace.Tracer
}

func NewSessionRedisCache(client *redis.Client, tracer trace.Tracer) domain.SessionCache {
	return &SessionRedisCache{
		client: client,
		tracer: tracer,
	}
}

func (c *SessionRedisCache) PostSession(ctx context.Context, tokenID string, userID string) error {
	ctx, span := c.tracer.Start(ctx, "SessionCache.PostSession")
	defer span.End()

	result := c.client.Set(tokenID, userID, authorization.TokenValidity)
	if result.Err() != nil {
		span.SetStatus(codes.Error, "Error posting session entry")
		log.Printf("redis set error: %s", result.Err())
		return result.Err()
	}

	return nil
}

func (c *SessionRedisCache) GetSession(ctx context.Context, tokenID string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "SessionCache.GetSession")
	defer span.End()

	result := c.client.Get(tokenID)
	userID, err := result.Result()
	if err != nil {
		span.SetStatus(codes.Error, "Error getting session entry")
		return "", err
	}
	return userID, nil
}

func (c *SessionRedisCache) DelSession(ctx context.Context, tokenID string) error {
	ctx, span := c.tracer.Start(ctx, "SessionCache.DelSession")
	defer span.End()

	result := c.client.Del(tokenID)
	if result.Err() != nil {
		span.SetStatus(codes.Error, "Error deleting session entry")
		log.Println(result.Err())
		return result.Err()
	}

	return nil
}
