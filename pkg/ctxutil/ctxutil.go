// Package ctxutil carries request-scoped values through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

type ctxKey string

const (
	scopeKey     ctxKey = "scope"
	requestIDKey ctxKey = "request_id"
)

// WithScope stores the caller's data scope in the context.
func WithScope(ctx context.Context, scope domain.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

// ScopeFromCtx extracts the caller's scope. ok is false when the scope is
// missing, has no user, or is a non-master scope without a substation.
func ScopeFromCtx(ctx context.Context) (domain.Scope, bool) {
	scope, ok := ctx.Value(scopeKey).(domain.Scope)
	if !ok || scope.UserID == uuid.Nil || (!scope.Master && scope.Gardu == "") {
		return domain.Scope{}, false
	}
	return scope, true
}

// UserIDFromCtx extracts the user ID of the caller's scope.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	scope, ok := ScopeFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return scope.UserID, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
