package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rentride_service/domain"
	"rentride_service/errors"
)

func seededCarService(t *testing.T) (*CarService, *fakeCarStore) {
	t.Helper()

	cars := newFakeCarStore()
	service := NewCarService(cars, nil, testTracer)

	inserted, err := service.SeedCars(context.Background(), testPrincipal(domain.RoleAdmin))
	require.NoError(t, err)
	require.Equal(t, 16, inserted)

	return service, cars
}

func TestCarFilterElectricWithSeats(t *testing.T) {
	service, _ := seededCarService(t)

	result, err := service.GetAll(context.Background(), &domain.CarFilter{
		FuelType: "electric",
		MinSeats: 5,
	})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "Tesla", result[0].Brand)
	assert.Equal(t, "Model 3", result[0].Model)
}

func TestCarFilterBrandCaseInsensitive(t *testing.T) {
	service, _ := seededCarService(t)

	result, err := service.GetAll(context.Background(), &domain.CarFilter{Brand: "toyota"})
	require.NoError(t, err)

	assert.Len(t, result, 2)
	for _, car := range result {
		assert.Equal(t, "Toyota", car.Brand)
	}
}

func TestCarFilterPriceBoundsInclusive(t *testing.T) {
	service, _ := seededCarService(t)

	cheap, err := service.GetAll(context.Background(), &domain.CarFilter{MaxPrice: 40})
	require.NoError(t, err)
	assert.Len(t, cheap, 2)

	expensive, err := service.GetAll(context.Background(), &domain.CarFilter{MinPrice: 200})
	require.NoError(t, err)
	require.Len(t, expensive, 1)
	assert.Equal(t, "Porsche", expensive[0].Brand)
}

func TestCarFilterExcludesUnavailable(t *testing.T) {
	cars := newFakeCarStore()
	service := NewCarService(cars, nil, testTracer)

	car := &domain.Car{
		Brand:       "Fiat",
		Model:       "Panda",
		PricePerDay: 25,
		Type:        "hatchback",
		Seats:       4,
		FuelType:    "petrol",
		Available:   false,
	}
	_, err := cars.Insert(context.Background(), car)
	require.NoError(t, err)

	result, err := service.GetAll(context.Background(), &domain.CarFilter{})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSeedCarsOnlyOnce(t *testing.T) {
	service, _ := seededCarService(t)

	_, err := service.SeedCars(context.Background(), testPrincipal(domain.RoleAdmin))
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)
}

func TestSeedCarsRequiresAdmin(t *testing.T) {
	cars := newFakeCarStore()
	service := NewCarService(cars, nil, testTracer)

	_, err := service.SeedCars(context.Background(), testPrincipal(domain.RoleUser))
	assert.ErrorIs(t, err, errors.ErrForbidden)
}

func TestCarWriteOperationsRequireAdmin(t *testing.T) {
	service, _ := seededCarService(t)
	user := testPrincipal(domain.RoleUser)

	_, err := service.Create(context.Background(), user, &domain.Car{})
	assert.ErrorIs(t, err, errors.ErrForbidden)

	_, err = service.Update(context.Background(), user, primitive.NewObjectID().Hex(), &domain.Car{})
	assert.ErrorIs(t, err, errors.ErrForbidden)

	err = service.Delete(context.Background(), user, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errors.ErrForbidden)
}

func TestCarCreateValidates(t *testing.T) {
	cars := newFakeCarStore()
	service := NewCarService(cars, nil, testTracer)
	admin := testPrincipal(domain.RoleAdmin)

	_, err := service.Create(context.Background(), admin, &domain.Car{Brand: "Skoda"})
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	created, err := service.Create(context.Background(), admin, &domain.Car{
		Brand:       "Skoda",
		Model:       "Octavia",
		PricePerDay: 35,
		Type:        "sedan",
		Seats:       5,
		FuelType:    "diesel",
	})
	require.NoError(t, err)
	assert.True(t, created.Available)
	assert.NotNil(t, created.Images)
}

func TestCarUpdatePreservesCreatedAt(t *testing.T) {
	service, _ := seededCarService(t)
	admin := testPrincipal(domain.RoleAdmin)

	listing, err := service.GetAll(context.Background(), &domain.CarFilter{Brand: "Porsche"})
	require.NoError(t, err)
	require.Len(t, listing, 1)
	original := listing[0]

	updated, err := service.Update(context.Background(), admin, original.ID.Hex(), &domain.Car{
		Brand:       original.Brand,
		Model:       original.Model,
		PricePerDay: 210,
		Type:        original.Type,
		Seats:       original.Seats,
		FuelType:    original.FuelType,
		Available:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(210), updated.PricePerDay)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
}

func TestCarGetAndDelete(t *testing.T) {
	service, _ := seededCarService(t)
	admin := testPrincipal(domain.RoleAdmin)

	_, err := service.Get(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	_, err = service.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errors.ErrNotFound)

	listing, err := service.GetAll(context.Background(), &domain.CarFilter{Brand: "Tesla"})
	require.NoError(t, err)
	require.Len(t, listing, 1)

	err = service.Delete(context.Background(), admin, listing[0].ID.Hex())
	require.NoError(t, err)

	_, err = service.Get(context.Background(), listing[0].ID.Hex())
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
