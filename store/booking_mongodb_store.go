package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/domain"
	"rentride_service/errors"
)

const (
	BOOKING_COLLECTION = "bookings"
)

type BookingMongoDBStore struct {
	bookings *mongo.Collection
	tracer   trace.Tracer
}

func NewBookingMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	bookings := client.Database(DATABASE).Collection(BOOKING_COLLECTION)
	return &BookingMongoDBStore{
		bookings: bookings,
		tracer:   tracer,
	}
}

func (store *BookingMongoDBStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Insert")
	defer span.End()

	booking.ID = primitive.NewObjectID()
	result, err := store.bookings.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = result.InsertedID.(primitive.ObjectID)
	return booking, nil
}

func (store *BookingMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Get")
	defer span.End()

	result := store.bookings.FindOne(ctx, bson.M{"_id": id})

	var booking domain.Booking
	if err := result.Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func (store *BookingMongoDBStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.D{{}})
}

func (store *BookingMongoDBStore) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetByUser")
	defer span.End()

	return store.filter(ctx, bson.M{"userId": userID})
}

func (store *BookingMongoDBStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.UpdateStatus")
	defer span.End()

	update := bson.M{"$set": bson.M{"status": status}}
	result, err := store.bookings.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, errors.ErrNotFound
	}

	return store.Get(ctx, id)
}

func (store *BookingMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Delete")
	defer span.End()

	result, err := store.bookings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return errors.ErrNotFound
	}

	return nil
}

func (store *BookingMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := store.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeBookings(ctx, cursor)
}

func decodeBookings(ctx context.Context, cursor *mongo.Cursor) (bookings []*domain.Booking, err error) {
	for cursor.Next(ctx) {
		var booking domain.Booking
		err = cursor.Decode(&booking)
		if err != nil {
			return
		}
		bookings = append(bookings, &booking)
	}
	err = cursor.Err()
	return
}
