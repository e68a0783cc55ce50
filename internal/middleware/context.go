package middleware

import "context"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserIDKey is the context key for user ID
	UserIDKey contextKey = "user_id"
	// RoleKey is the context key for the caller's role
	RoleKey contextKey = "role"
)

// WithUserID adds user ID to request context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID retrieves user ID from context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if uid, ok := userID.(string); ok {
			return uid
		}
	}
	return EmptyUserID
}

// WithRole adds the caller's role to request context
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, RoleKey, role)
}

// GetRole retrieves the caller's role, defaulting to RoleUser
func GetRole(ctx context.Context) string {
	if role, ok := ctx.Value(RoleKey).(string); ok && role != "" {
		return role
	}
	return RoleUser
}

// IsAdmin reports whether the caller holds the admin role
func IsAdmin(ctx context.Context) bool {
	return GetRole(ctx) == RoleAdmin
}
