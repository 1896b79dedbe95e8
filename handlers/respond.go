package handlers

import (
	"encoding/json"
	"net/http"

	"rentride_service/authorization"
	"rentride_service/domain"
)

type KeyProduct struct{}

func jsonResponse(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

func messageResponse(writer http.ResponseWriter, statusCode int, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(map[string]string{"message": message})
}

func principalFrom(h *http.Request) (authorization.Principal, bool) {
	return authorization.PrincipalFromContext(h.Context())
}

// userView is the user shape returned to clients, password hash stripped.
type userView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           domain.UserRole `json:"role"`
	DrivingLicense string          `json:"drivingLicense,omitempty"`
}

func viewOf(user *domain.User) userView {
	return userView{
		ID:             user.ID.Hex(),
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		DrivingLicense: user.DrivingLicense,
	}
}
