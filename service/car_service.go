package application

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"rentride_service/authorization"
	"rentride_service/domain"
	"rentride_service/errors"
)

type CarService struct {
	cars            domain.CarStore
	recommendations domain.RecommendationStore
	tracer          trace.Tracer
}

func NewCarService(cars domain.CarStore, recommendations domain.RecommendationStore, tracer trace.Tracer) *CarService {
	return &CarService{
		cars:            cars,
		recommendations: recommendations,
		tracer:          tracer,
	}
}

func (service *CarService) GetAll(ctx context.Context, filter *domain.CarFilter) ([]*domain.Car, error) {
	ctx, span := service.tracer.Start(ctx, "CarService.GetAll")
	defer span.End()

	return service.cars.GetAll(ctx, filter)
}

func (service *CarService) Get(ctx context.Context, id string) (*domain.Car, error) {
	ctx, span := service.tracer.Start(ctx, "CarService.Get")
	defer span.End()

	carID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrInvalidRequest
	}

	car, err := service.cars.Get(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.ErrNotFound
	}

	return car, nil
}

func (service *CarService) Create(ctx context.Context, principal authorization.Principal, car *domain.Car) (*domain.Car, error) {
	ctx, span := service.tracer.Start(ctx, "CarService.Create")
	defer span.End()

	if !principal.IsAdmin() {
		return nil, errors.ErrForbidden
	}

	if err := car.ValidateCar(); err != nil {
		return nil, errors.ErrInvalidRequest
	}
	if car.Images == nil {
		car.Images = []string{}
	}
	car.Available = true

	car, err := service.cars.Insert(ctx, car)
	if err != nil {
		return nil, err
	}

	if service.recommendations != nil {
		if err := service.recommendations.CreateCar(ctx, car.ID.Hex(), car.Brand, car.Model); err != nil {
			log.Println("recommendation node not created:", err)
		}
	}

	return car, nil
}

func (service *CarService) Update(ctx context.Context, principal authorization.Principal, id string, update *domain.Car) (*domain.Car, error) {
	ctx, span := service.tracer.Start(ctx, "CarService.Update")
	defer span.End()

	if !principal.IsAdmin() {
		return nil, errors.ErrForbidden
	}

	carID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrInvalidRequest
	}

	car, err := service.cars.Get(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.ErrNotFound
	}

	update.ID = carID
	update.CreatedAt = car.CreatedAt
	return service.cars.Update(ctx, update)
}

func (service *CarService) Delete(ctx context.Context, principal authorization.Principal, id string) error {
	ctx, span := service.tracer.Start(ctx, "CarService.Delete")
	defer span.End()

	if !principal.IsAdmin() {
		return errors.ErrForbidden
	}

	carID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.ErrInvalidRequest
	}

	if err := service.cars.Delete(ctx, carID); err != nil {
		return err
	}

	if service.recommendations != nil {
		if err := service.recommendations.DeleteCar(ctx, id); err != nil {
			log.Println("recommendation node not deleted:", err)
		}
	}

	return nil
}

// Recommend returns catalog entries for the caller's booking-graph
// neighbourhood. Empty result when the graph store is not wired.
func (service *CarService) Recommend(ctx context.Context, principal authorization.Principal) ([]*domain.Car, error) {
	ctx, span := service.tracer.Start(ctx, "CarService.Recommend")
	defer span.End()

	if service.recommendations == nil {
		return []*domain.Car{}, nil
	}

	ids, err := service.recommendations.RecommendForUser(ctx, principal.ID.Hex())
	if err != nil {
		return nil, err
	}

	carIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		carID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		carIDs = append(carIDs, carID)
	}

	if len(carIDs) == 0 {
		return []*domain.Car{}, nil
	}

	return service.cars.GetByIDs(ctx, carIDs)
}

func (service *CarService) SeedCars(ctx context.Context, principal authorization.Principal) (int, error) {
	ctx, span := service.tracer.Start(ctx, "CarService.SeedCars")
	defer span.End()

	if !principal.IsAdmin() {
		return 0, errors.ErrForbidden
	}

	count, err := service.cars.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, errors.ErrAlreadyExists
	}

	inserted := 0
	for _, fixture := range DummyCars() {
		car := fixture
		if _, err := service.cars.Insert(ctx, &car); err != nil {
			return inserted, err
		}
		if service.recommendations != nil {
			if err := service.recommendations.CreateCar(ctx, car.ID.Hex(), car.Brand, car.Model); err != nil {
				log.Println("recommendation node not created:", err)
			}
		}
		inserted++
	}

	return inserted, nil
}
