package casbinAuthorization

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/casbin/casbin"
	"github.com/sirupsen/logrus"
	"rentride_service/authorization"
)

func extractUserRole(r *http.Request) (string, error) {
	bearer := r.Header.Get("Authorization")
	if bearer == "" {
		return "Unauthenticated", nil
	}

	bearerToken := strings.Split(bearer, "Bearer ")
	if len(bearerToken) != 2 {
		return "", errors.New("invalid token format")
	}

	tokenString := bearerToken[1]
	claims, err := authorization.VerifyToken(tokenString)
	if err != nil {
		return "", err
	}

	return claims.Role, nil
}

func CasbinMiddleware(e *casbin.Enforcer, logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			userRole, err := extractUserRole(r)
			if err != nil {
				logger.Error("Unauthorized access attempt")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			res, err := e.EnforceSafe(userRole, r.URL.Path, r.Method)
			if err != nil {
				log.Println("enforce error:", err)
				logger.Error("Error enforcing authorization policy")
				http.Error(w, "unauthorized user", http.StatusUnauthorized)
				return
			}

			if res {
				next.ServeHTTP(w, r)
			} else {
				logger.Warn("Unauthorized access attempt: forbidden")
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}

		return http.HandlerFunc(fn)
	}
}
