package handlers

import (
	"encoding/json"
	errorsx "errors"
	"log"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"rentride_service/errors"
	"rentride_service/service"
)

type UserHandler struct {
	service *application.UserService
	logger  *log.Logger
	tracer  trace.Tracer
}

func NewUserHandler(service *application.UserService, logger *log.Logger, tracer trace.Tracer) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

type updateProfileRequest struct {
	Name           string `json:"name"`
	DrivingLicense string `json:"drivingLicense"`
}

func (handler *UserHandler) GetProfile(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetProfile")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	user, err := handler.service.GetProfile(ctx, principal)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.UserNotFoundError)
		default:
			handler.logger.Println("Getting profile failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{"user": viewOf(user)})
}

func (handler *UserHandler) UpdateProfile(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.UpdateProfile")
	defer span.End()

	principal, ok := principalFrom(req)
	if !ok {
		messageResponse(writer, http.StatusUnauthorized, errors.UnauthorizedError)
		return
	}

	var request updateProfileRequest
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		return
	}

	user, err := handler.service.UpdateProfile(ctx, principal, request.Name, request.DrivingLicense)
	if err != nil {
		switch {
		case errorsx.Is(err, errors.ErrInvalidRequest):
			messageResponse(writer, http.StatusBadRequest, errors.MissingFieldsError)
		case errorsx.Is(err, errors.ErrNotFound):
			messageResponse(writer, http.StatusNotFound, errors.UserNotFoundError)
		default:
			handler.logger.Println("Updating profile failed:", err)
			messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		}
		return
	}

	jsonResponse(writer, http.StatusOK, map[string]interface{}{
		"message": "Profile updated",
		"user":    viewOf(user),
	})
}

func (handler *UserHandler) SeedAdmin(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.SeedAdmin")
	defer span.End()

	admin, created, err := handler.service.SeedAdmin(ctx)
	if err != nil {
		handler.logger.Println("Seeding admin failed:", err)
		messageResponse(writer, http.StatusInternalServerError, errors.InternalServerError)
		return
	}

	message := "Admin already exists"
	status := http.StatusOK
	if created {
		message = "Admin account created"
		status = http.StatusCreated
	}

	jsonResponse(writer, status, map[string]interface{}{
		"message": message,
		"user":    viewOf(admin),
	})
}
