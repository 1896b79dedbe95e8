package application

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
	"rentride_service/authorization"
	"rentride_service/domain"
	"rentride_service/errors"
)

type AuthService struct {
	users    domain.UserStore
	sessions domain.SessionCache
	tracer   trace.Tracer
}

func NewAuthService(users domain.UserStore, sessions domain.SessionCache, tracer trace.Tracer) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tracer:   tracer,
	}
}

// Signup creates a regular user account and logs it in. The role is always
// "user"; admin accounts only come from seeding.
func (service *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	ctx, span := service.tracer.Start(ctx, "AuthService.Signup")
	defer span.End()

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, "", errors.ErrInvalidRequest
	}

	// The stored password is a bcrypt hash, so length has to be checked on
	// the plaintext here rather than by the struct validator.
	if len(password) < 6 {
		return nil, "", errors.ErrInvalidRequest
	}

	existingUser, err := service.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existingUser != nil {
		return nil, "", errors.ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleUser,
	}

	if err := user.ValidateUser(); err != nil {
		return nil, "", errors.ErrInvalidRequest
	}

	user, err = service.users.Register(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := service.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (service *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	ctx, span := service.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	if email == "" || password == "" {
		return nil, "", errors.ErrInvalidRequest
	}

	user, err := service.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errors.ErrUnauthorized
	}

	if user.Blocked {
		return nil, "", errors.ErrForbidden
	}

	passError := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if passError != nil {
		return nil, "", errors.ErrUnauthorized
	}

	token, err := service.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (service *AuthService) Logout(ctx context.Context, tokenString string) error {
	ctx, span := service.tracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	claims, err := authorization.VerifyToken(tokenString)
	if err != nil {
		return errors.ErrUnauthorized
	}

	if service.sessions == nil {
		return nil
	}

	return service.sessions.DelSession(ctx, claims.TokenID)
}

func (service *AuthService) issueToken(ctx context.Context, user *domain.User) (string, error) {
	tokenID := uuid.New().String()

	token, err := authorization.GenerateToken(user, tokenID)
	if err != nil {
		log.Println(err)
		return "", err
	}

	if service.sessions != nil {
		if err := service.sessions.PostSession(ctx, tokenID, user.ID.Hex()); err != nil {
			return "", err
		}
	}

	return token, nil
}
