package handlers

import (
	"encoding/json"
	errorsx "errors"
	"log"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"rentride_service/authorization"
	"rentride_service/errors"
	"rentride_service/service"
)

type AuthHandler struct {
	service *application.AuthService
	logger  *log.Logger
	tracer  trace.Tracer
}

func NewAuthHandler(service *application.AuthService, logger *log.Logger, tracer trace.Tracer) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *AuthHandler) Signup(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Signup")
	defer span.End()

	var request signupRequest
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		return
	}

	user, token, err := handler.service.Signup(ctx, request.Name, request.Email, request.Password)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrAlreadyExists):
			messageResponse(writer, http.StatusBadRequest, errors.EmailAlreadyExist)
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		default:
			handler.logger.Println("Signup failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusCreated, map[string]interface{}{
		"message": "Account created successfully",
		"token":   token,
		"user":    viewOf(user),
	})
}

func (handler *AuthHandler) Login(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Login")
	defer span.End()

	var request loginRequest
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		return
	}

	user, token, err := handler.service.Login(ctx, request.Email, request.Password)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		case errorsx.Is(err, errors.ErrUnauthorized):
			messageResponse(writer, http.StatusUnauthorized, errors.InvalidCredentials)
		case errorsx.Is(err, errors.ErrForbidden):
			messageResponse(writer, http.StatusForbidden, errors.BlockedAccountError)
		default:
			handler.logger.Println("Login failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"role":    user.Role,
		"user":    viewOf(user),
	})
}

func (handler *AuthHandler) Logout(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.Logout")
	defer span.End()

	token := authorization.ExtractBearerToken(req.Header.Get("Authorization"))
	if token == "" {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	err := handler.service.Logout(ctx, token)
	if err != nil {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	messageResponse(writer, http.StatusOK, "Logged out successfully")
}
