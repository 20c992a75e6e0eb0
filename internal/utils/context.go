package utils

import (
	"context"

	"github.com/google/uuid"
)

// Context keys populated by the auth middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
)

// GetUserIDFromContext extracts the authenticated user id set by the
// auth middleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

// GetEmailFromContext extracts the authenticated user's email, if present.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyEmail).(string)
	return email, ok
}
