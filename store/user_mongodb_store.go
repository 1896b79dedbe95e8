package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/domain"
)

const (
	DATABASE        = "rentride"
	USER_COLLECTION = "users"
)

type UserMongoDBStore struct {
	users  *mongo.Collection
	tracer trace.Tracer
}

func NewUserMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.UserStore {
	users := client.Database(DATABASE).Collection(USER_COLLECTION)
	return &UserMongoDBStore{
		users:  users,
		tracer: tracer,
	}
}

func (store *UserMongoDBStore) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.Register")
	defer span.End()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	result, err := store.users.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (store *UserMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.Get")
	defer span.End()

	filter := bson.M{"_id": id}
	return store.filterOne(ctx, filter)
}

func (store *UserMongoDBStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.GetByEmail")
	defer span.End()

	filter := bson.M{"email": email}
	return store.filterOne(ctx, filter)
}

func (store *UserMongoDBStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *UserMongoDBStore) UpdateUser(ctx context.Context, updateUser *domain.User) (*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserStore.UpdateUser")
	defer span.End()

	updateData := bson.M{
		"name":           updateUser.Name,
		"drivingLicense": updateUser.DrivingLicense,
		"blocked":        updateUser.Blocked,
		"role":           updateUser.Role,
	}

	filter := bson.M{"_id": updateUser.ID}
	update := bson.M{"$set": updateData}

	result, err := store.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, errors.New("No user updated")
	}

	return updateUser, nil
}

func (store *UserMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.User, error) {
	cursor, err := store.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeUsers(ctx, cursor)
}

func (store *UserMongoDBStore) filterOne(ctx context.Context, filter interface{}) (*domain.User, error) {
	result := store.users.FindOne(ctx, filter)

	var user domain.User
	if err := result.Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func decodeUsers(ctx context.Context, cursor *mongo.Cursor) (users []*domain.User, err error) {
	for cursor.Next(ctx) {
		var user domain.User
		err = cursor.Decode(&user)
		if err != nil {
			return
		}
		users = append(users, &user)
	}
	err = cursor.Err()
	return
}
