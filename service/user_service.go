package application

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
	"rentride_service/authorization"
	"rentride_service/domain"
	"rentride_service/errors"
)

const (
	seedAdminName     = "Admin"
	seedAdminEmail    = "admin@rentride.com"
	seedAdminPassword = "admin123"
)

type UserService struct {
	users  domain.UserStore
	tracer trace.Tracer
}

func NewUserService(users domain.UserStore, tracer trace.Tracer) *UserService {
	return &UserService{
		users:  users,
		tracer: tracer,
	}
}

func (service *UserService) GetProfile(ctx context.Context, principal authorization.Principal) (*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.GetProfile")
	defer span.End()

	user, err := service.users.Get(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrNotFound
	}

	user.Password = ""
	return user, nil
}

// UpdateProfile edits name and driving license. No fresh token is issued: the
// auth middleware resolves the principal against the store on every request,
// so the change is visible immediately.
func (service *UserService) UpdateProfile(ctx context.Context, principal authorization.Principal, name, drivingLicense string) (*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.UpdateProfile")
	defer span.End()

	user, err := service.users.Get(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrNotFound
	}

	if strings.TrimSpace(name) != "" {
		user.Name = strings.TrimSpace(name)
	}
	user.DrivingLicense = drivingLicense

	user, err = service.users.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// SeedAdmin creates the well-known admin account if it is missing.
func (service *UserService) SeedAdmin(ctx context.Context) (*domain.User, bool, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.SeedAdmin")
	defer span.End()

	existingAdmin, err := service.users.GetByEmail(ctx, seedAdminEmail)
	if err != nil {
		return nil, false, err
	}
	if existingAdmin != nil {
		existingAdmin.Password = ""
		return existingAdmin, false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	admin := &domain.User{
		Name:     seedAdminName,
		Email:    seedAdminEmail,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	}

	admin, err = service.users.Register(ctx, admin)
	if err != nil {
		return nil, false, err
	}

	admin.Password = ""
	return admin, true, nil
}
