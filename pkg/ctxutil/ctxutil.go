package ctxutil

import (
	"context"

	"github.com/allocbot/allocbot-backend/internal/domain"
)

type ctxKey string

const (
	actorIDKey ctxKey = "actor_id"
	roleKey    ctxKey = "role"
)

// WithActorID stores the acting user's external numeric ID in the context.
func WithActorID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// ActorIDFromCtx extracts the actor ID from the context.
// Returns 0 and false if the value is missing or has the wrong type.
func ActorIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(actorIDKey).(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// WithRole stores the actor's resolved role in the context. The role is
// resolved once per command by the router and never cached across commands.
func WithRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the actor's role from the context.
// Returns RoleUser when absent: an unresolved role never grants anything.
func RoleFromCtx(ctx context.Context) domain.Role {
	role, ok := ctx.Value(roleKey).(domain.Role)
	if !ok || !role.IsValid() {
		return domain.RoleUser
	}
	return role
}
