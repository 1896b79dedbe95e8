package store

import (
	"context"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/domain"
)

const (
	RECOMMENDATION_DATABASE = "recommendation"
)

type RecommendationNeo4JStore struct {
	driver neo4j.DriverWithContext
	logger *log.Logger
	tracer trace.Tracer
}

func NewRecommendationNeo4JStore(driver *neo4j.DriverWithContext, tracer trace.Tracer) domain.RecommendationStore {
	return &RecommendationNeo4JStore{
		driver: *driver,
		logger: log.Default(),
		tracer: tracer,
	}
}

func (store *RecommendationNeo4JStore) CreateCar(ctx context.Context, carID string, brand string, model string) error {
	ctx, span := store.tracer.Start(ctx, "RecommendationStore.CreateCar")
	defer span.End()

	session := store.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: RECOMMENDATION_DATABASE})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx,
		func(transaction neo4j.ManagedTransaction) (any, error) {
			result, err := transaction.Run(ctx,
				"MERGE (c:Car {id: $id}) SET c.brand = $brand, c.model = $model RETURN c.id",
				map[string]any{"id": carID, "brand": brand, "model": model})
			if err != nil {
				log.Printf("RecommendationStore.CreateCar.Run() : %s", err)
				return nil, err
			}

			if result.Next(ctx) {
				return result.Record().Values[0], nil
			}

			return nil, result.Err()
		})
	if err != nil {
		log.Printf("RecommendationStore.CreateCar.ExecuteWrite() : %s\n", err)
		return err
	}

	return nil
}

func (store *RecommendationNeo4JStore) DeleteCar(ctx context.Context, carID string) error {
	ctx, span := store.tracer.Start(ctx, "RecommendationStore.DeleteCar")
	defer span.End()

	session := store.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: RECOMMENDATION_DATABASE})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(transaction neo4j.ManagedTransaction) (any, error) {
		_, err := transaction.Run(ctx,
			"MATCH (c:Car) "+
				"WHERE c.id = $id "+
				"DETACH DELETE c",
			map[string]any{"id": carID})
		if err != nil {
			log.Printf("RecommendationStore.DeleteCar.Run() : %s", err)
			return nil, err
		}

		return nil, nil
	})
	if err != nil {
		log.Printf("RecommendationStore.DeleteCar.ExecuteWrite() : %s", err)
		return err
	}

	return nil
}

func (store *RecommendationNeo4JStore) CreateBooked(ctx context.Context, userID string, carID string) error {
	ctx, span := store.tracer.Start(ctx, "RecommendationStore.CreateBooked")
	defer span.End()

	session := store.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: RECOMMENDATION_DATABASE})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx,
		func(transaction neo4j.ManagedTransaction) (any, error) {
			_, err := transaction.Run(ctx,
				"MERGE (u:User {id: $userId}) "+
					"MERGE (c:Car {id: $carId}) "+
					"MERGE (u)-[:BOOKED]->(c)",
				map[string]any{"userId": userID, "carId": carID})
			if err != nil {
				log.Printf("RecommendationStore.CreateBooked.Run() : %s", err)
				return nil, err
			}

			return nil, nil
		})
	if err != nil {
		log.Printf("RecommendationStore.CreateBooked.ExecuteWrite() : %s\n", err)
		return err
	}

	return nil
}

// RecommendForUser returns ids of cars booked by users who booked the same
// cars as the given user, most shared bookings first.
func (store *RecommendationNeo4JStore) RecommendForUser(ctx context.Context, userID string) ([]string, error) {
	ctx, span := store.tracer.Start(ctx, "RecommendationStore.RecommendForUser")
	defer span.End()

	session := store.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: RECOMMENDATION_DATABASE})
	defer session.Close(ctx)

	carIDs, err := session.ExecuteRead(ctx,
		func(transaction neo4j.ManagedTransaction) (any, error) {
			result, err := transaction.Run(ctx,
				"MATCH (u:User {id: $userId})-[:BOOKED]->(:Car)<-[:BOOKED]-(other:User)-[:BOOKED]->(rec:Car) "+
					"WHERE NOT (u)-[:BOOKED]->(rec) "+
					"RETURN rec.id AS id, count(*) AS freq "+
					"ORDER BY freq DESC LIMIT 10",
				map[string]any{"userId": userID})
			if err != nil {
				log.Printf("RecommendationStore.RecommendForUser.Run() : %s", err)
				return nil, err
			}

			var ids []string
			for result.Next(ctx) {
				id, ok := result.Record().Get("id")
				if !ok {
					continue
				}
				ids = append(ids, id.(string))
			}

			return ids, result.Err()
		})
	if err != nil {
		log.Printf("RecommendationStore.RecommendForUser.ExecuteRead() : %s\n", err)
		return nil, err
	}

	return carIDs.([]string), nil
}
