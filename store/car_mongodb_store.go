package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/domain"
	"rentride_service/errors"
)

const (
	CAR_COLLECTION = "cars"
)

type CarMongoDBStore struct {
	cars   *mongo.Collection
	tracer trace.Tracer
}

func NewCarMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.CarStore {
	cars := client.Database(DATABASE).Collection(CAR_COLLECTION)
	return &CarMongoDBStore{
		cars:   cars,
		tracer: tracer,
	}
}

func (store *CarMongoDBStore) Insert(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	ctx, span := store.tracer.Start(ctx, "CarStore.Insert")
	defer span.End()

	car.ID = primitive.NewObjectID()
	if car.CreatedAt.IsZero() {
		car.CreatedAt = time.Now()
	}
	result, err := store.cars.InsertOne(ctx, car)
	if err != nil {
		return nil, err
	}
	car.ID = result.InsertedID.(primitive.ObjectID)
	return car, nil
}

func (store *CarMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Car, error) {
	ctx, span := store.tracer.Start(ctx, "CarStore.Get")
	defer span.End()

	result := store.cars.FindOne(ctx, bson.M{"_id": id})

	var car domain.Car
	if err := result.Decode(&car); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &car, nil
}

// GetAll builds the catalog query the same way the original filter surface is
// specified: available listings only, every supplied predicate ANDed in.
func (store *CarMongoDBStore) GetAll(ctx context.Context, carFilter *domain.CarFilter) ([]*domain.Car, error) {
	ctx, span := store.tracer.Start(ctx, "CarStore.GetAll")
	defer span.End()

	filter := bson.M{"available": true}
	if carFilter != nil {
		if carFilter.Brand != "" {
			filter["brand"] = bson.M{"$regex": carFilter.Brand, "$options": "i"}
		}
		if carFilter.FuelType != "" {
			filter["fuelType"] = carFilter.FuelType
		}
		if carFilter.MinSeats > 0 {
			filter["seats"] = bson.M{"$gte": carFilter.MinSeats}
		}
		if carFilter.MinPrice > 0 || carFilter.MaxPrice > 0 {
			price := bson.M{}
			if carFilter.MinPrice > 0 {
				price["$gte"] = carFilter.MinPrice
			}
			if carFilter.MaxPrice > 0 {
				price["$lte"] = carFilter.MaxPrice
			}
			filter["pricePerDay"] = price
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := store.cars.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeCars(ctx, cursor)
}

func (store *CarMongoDBStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Car, error) {
	ctx, span := store.tracer.Start(ctx, "CarStore.GetByIDs")
	defer span.End()

	cursor, err := store.cars.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeCars(ctx, cursor)
}

func (store *CarMongoDBStore) Update(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	ctx, span := store.tracer.Start(ctx, "CarStore.Update")
	defer span.End()

	updateData := bson.M{
		"brand":       car.Brand,
		"model":       car.Model,
		"pricePerDay": car.PricePerDay,
		"type":        car.Type,
		"seats":       car.Seats,
		"fuelType":    car.FuelType,
		"images":      car.Images,
		"available":   car.Available,
	}

	result, err := store.cars.UpdateOne(ctx, bson.M{"_id": car.ID}, bson.M{"$set": updateData})
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, errors.ErrNotFound
	}

	return car, nil
}

func (store *CarMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "CarStore.Delete")
	defer span.End()

	result, err := store.cars.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errors.ErrNotFound
	}

	return nil
}

func (store *CarMongoDBStore) Count(ctx context.Context) (int64, error) {
	ctx, span := store.tracer.Start(ctx, "CarStore.Count")
	defer span.End()

	return store.cars.CountDocuments(ctx, bson.D{{}})
}

func decodeCars(ctx context.Context, cursor *mongo.Cursor) (cars []*domain.Car, err error) {
	for cursor.Next(ctx) {
		var car domain.Car
		err = cursor.Decode(&car)
		if err != nil {
			return
		}
		cars = append(cars, &car)
	}
	err = cursor.Err()
	return
}
