package authorization

import (
	"log"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"rentride_service/domain"
)

type Authenticator struct {
	users  domain.UserStore
	cache  domain.SessionCache
	logger *log.Logger
}

func NewAuthenticator(users domain.UserStore, cache domain.SessionCache, logger *log.Logger) *Authenticator {
	return &Authenticator{
		users:  users,
		cache:  cache,
		logger: logger,
	}
}

func ExtractBearerToken(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// Middleware verifies the bearer token and resolves the CURRENT user record
// into a Principal, so role and name edits, and account blocks, take effect
// without the client refreshing its token.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, h *http.Request) {
		tokenString := ExtractBearerToken(h.Header.Get("Authorization"))
		if tokenString == "" {
			a.logger.Println("Authorization header missing")
			http.Error(rw, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := VerifyToken(tokenString)
		if err != nil {
			a.logger.Println("Token verification error:", err)
			http.Error(rw, "Invalid token", http.StatusUnauthorized)
			return
		}

		if a.cache != nil {
			if _, err := a.cache.GetSession(h.Context(), claims.TokenID); err != nil {
				a.logger.Println("Session not found for token:", claims.TokenID)
				http.Error(rw, "Invalid token", http.StatusUnauthorized)
				return
			}
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			http.Error(rw, "Invalid token", http.StatusUnauthorized)
			return
		}

		user, err := a.users.Get(h.Context(), userID)
		if err != nil || user == nil {
			a.logger.Println("Principal lookup failed:", err)
			http.Error(rw, "Invalid token", http.StatusUnauthorized)
			return
		}

		if user.Blocked {
			a.logger.Println("Blocked account rejected:", user.ID.Hex())
			http.Error(rw, "Account blocked", http.StatusForbidden)
			return
		}

		principal := Principal{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		}

		ctx := ContextWithPrincipal(h.Context(), principal)
		next.ServeHTTP(rw, h.WithContext(ctx))
	})
}
