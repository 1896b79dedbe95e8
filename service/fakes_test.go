package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"rentride_service/domain"
	"rentride_service/errors"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

type fakeUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*domain.User{}}
}

func (store *fakeUserStore) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	stored := *user
	store.users[user.ID] = &stored
	return user, nil
}

func (store *fakeUserStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, ok := store.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (store *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, user := range store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (store *fakeUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	all := make([]*domain.User, 0, len(store.users))
	for _, user := range store.users {
		copied := *user
		all = append(all, &copied)
	}
	return all, nil
}

func (store *fakeUserStore) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.users[user.ID]; !ok {
		return nil, errors.ErrNotFound
	}
	stored := *user
	store.users[user.ID] = &stored
	copied := stored
	return &copied, nil
}

type fakeCarStore struct {
	mu   sync.Mutex
	cars map[primitive.ObjectID]*domain.Car
}

func newFakeCarStore() *fakeCarStore {
	return &fakeCarStore{cars: map[primitive.ObjectID]*domain.Car{}}
}

func (store *fakeCarStore) Insert(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	car.ID = primitive.NewObjectID()
	stored := *car
	store.cars[car.ID] = &stored
	return car, nil
}

func (store *fakeCarStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Car, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	car, ok := store.cars[id]
	if !ok {
		return nil, nil
	}
	copied := *car
	return &copied, nil
}

func (store *fakeCarStore) GetAll(ctx context.Context, filter *domain.CarFilter) ([]*domain.Car, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if filter == nil {
		filter = &domain.CarFilter{}
	}

	matched := []*domain.Car{}
	for _, car := range store.cars {
		if filter.Matches(car) {
			copied := *car
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (store *fakeCarStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Car, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	matched := []*domain.Car{}
	for _, id := range ids {
		if car, ok := store.cars[id]; ok {
			copied := *car
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (store *fakeCarStore) Update(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.cars[car.ID]; !ok {
		return nil, errors.ErrNotFound
	}
	stored := *car
	store.cars[car.ID] = &stored
	copied := stored
	return &copied, nil
}

func (store *fakeCarStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.cars[id]; !ok {
		return errors.ErrNotFound
	}
	delete(store.cars, id)
	return nil
}

func (store *fakeCarStore) Count(ctx context.Context) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	return int64(len(store.cars)), nil
}

type fakeBookingStore struct {
	mu       sync.Mutex
	bookings map[primitive.ObjectID]*domain.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[primitive.ObjectID]*domain.Booking{}}
}

func (store *fakeBookingStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	booking.ID = primitive.NewObjectID()
	stored := *booking
	store.bookings[booking.ID] = &stored
	return booking, nil
}

func (store *fakeBookingStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	booking, ok := store.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (store *fakeBookingStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	all := make([]*domain.Booking, 0, len(store.bookings))
	for _, booking := range store.bookings {
		copied := *booking
		all = append(all, &copied)
	}
	sortNewestFirst(all)
	return all, nil
}

func (store *fakeBookingStore) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*domain.Booking, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	matched := []*domain.Booking{}
	for _, booking := range store.bookings {
		if booking.UserID == userID {
			copied := *booking
			matched = append(matched, &copied)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

// Listings come back newest-created first, same as the createdAt sort in the
// Mongo store.
func sortNewestFirst(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

func (store *fakeBookingStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*domain.Booking, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	booking, ok := store.bookings[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	booking.Status = status
	copied := *booking
	return &copied, nil
}

func (store *fakeBookingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.bookings[id]; !ok {
		return errors.ErrNotFound
	}
	delete(store.bookings, id)
	return nil
}

type fakePaymentStore struct {
	mu       sync.Mutex
	payments []*domain.Payment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{}
}

func (store *fakePaymentStore) Insert(ctx context.Context, payment *domain.Payment) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	copied := *payment
	store.payments = append(store.payments, &copied)
	return nil
}

func (store *fakePaymentStore) GetByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	matched := []*domain.Payment{}
	for _, payment := range store.payments {
		if payment.BookingID == bookingID {
			copied := *payment
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

type fakeSessionCache struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: map[string]string{}}
}

func (cache *fakeSessionCache) PostSession(ctx context.Context, tokenID string, userID string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.sessions[tokenID] = userID
	return nil
}

func (cache *fakeSessionCache) GetSession(ctx context.Context, tokenID string) (string, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	userID, ok := cache.sessions[tokenID]
	if !ok {
		return "", errors.ErrNotFound
	}
	return userID, nil
}

func (cache *fakeSessionCache) DelSession(ctx context.Context, tokenID string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	delete(cache.sessions, tokenID)
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (mailer *fakeMailer) SendBookingConfirmation(to string, booking *domain.Booking) error {
	mailer.mu.Lock()
	defer mailer.mu.Unlock()

	mailer.sent = append(mailer.sent, to)
	return nil
}
