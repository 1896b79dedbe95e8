package authorization

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"rentride_service/domain"
)

// Principal is the authenticated identity attached to a request. Handlers pass
// it into every service call instead of re-decoding the token claims ad hoc.
type Principal struct {
	ID    primitive.ObjectID
	Email string
	Name  string
	Role  domain.UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

type principalKey struct{}

func ContextWithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(Principal)
	return principal, ok
}
