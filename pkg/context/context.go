package ctxutil

import (
	"context"
)

// ContextKey is the private key type for request-scoped values.
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	ActorIDKey   ContextKey = "actor_id"
	ActorMailKey ContextKey = "actor_email"
)

// WithRequestID stores the request correlation id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithActor stores the authenticated user's id and email; audit columns
// and permission checks downstream read these.
func WithActor(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, ActorIDKey, userID)
	return context.WithValue(ctx, ActorMailKey, email)
}

func GetRequestID(ctx context.Context) string {
	if val, ok := ctx.Value(RequestIDKey).(string); ok {
		return val
	}
	return ""
}

// GetActorID returns the id of the authenticated user, or "" for
// unauthenticated flows (login, seed).
func GetActorID(ctx context.Context) string {
	if val, ok := ctx.Value(ActorIDKey).(string); ok {
		return val
	}
	return ""
}

func GetActorEmail(ctx context.Context) string {
	if val, ok := ctx.Value(ActorMailKey).(string); ok {
		return val
	}
	return ""
}
