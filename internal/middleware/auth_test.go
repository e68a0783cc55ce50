package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

// TestWithUserID_GetUserID tests context user ID management
func TestWithUserID_GetUserID(t *testing.T) {
	t.Run("stores and retrieves user ID from context", func(t *testing.T) {
		ctx := WithUserID(context.Background(), "test-user-123")
		assert.Equal(t, "test-user-123", GetUserID(ctx))
	})

	t.Run("returns empty string for context without user ID", func(t *testing.T) {
		assert.Equal(t, EmptyUserID, GetUserID(context.Background()))
	})

	t.Run("handles context with wrong type value", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, 12345)
		assert.Equal(t, EmptyUserID, GetUserID(ctx))
	})

	t.Run("role defaults to user", func(t *testing.T) {
		assert.Equal(t, RoleUser, GetRole(context.Background()))
		assert.False(t, IsAdmin(context.Background()))
		assert.True(t, IsAdmin(WithRole(context.Background(), RoleAdmin)))
	})
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetUserID(r.Context()) + ":" + GetRole(r.Context())))
	})
}

func TestAuthenticator_Middleware(t *testing.T) {
	auth := NewAuthenticator(testSecret)
	valid, err := auth.IssueToken("user-1", RoleAdmin, time.Hour)
	require.NoError(t, err)

	expiredAuth := NewAuthenticator(testSecret)
	expiredAuth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredAuth.IssueToken("user-1", RoleUser, time.Hour)
	require.NoError(t, err)

	otherKey, err := NewAuthenticator("a-completely-different-secret-value").IssueToken("user-1", RoleAdmin, time.Hour)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-1"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, ErrMsgMissingAuthHeader},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ErrMsgInvalidAuthHeader},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, ErrMsgInvalidToken},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, ErrMsgInvalidToken},
		{"wrong signing key", "Bearer " + otherKey, http.StatusUnauthorized, ErrMsgInvalidToken},
		{"token without expiry", "Bearer " + noExp, http.StatusUnauthorized, ErrMsgInvalidToken},
		{"valid token", "Bearer " + valid, http.StatusOK, "user-1:admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/missions", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			auth.Middleware(echoUser()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestAuthenticator_SubjectFallback(t *testing.T) {
	auth := NewAuthenticator(testSecret)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "subject-user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := auth.Parse(raw)

	require.NoError(t, err)
	assert.Equal(t, "subject-user", claims.UserID)
}

func TestRequireAdmin(t *testing.T) {
	t.Run("rejects regular users", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/raffles", nil)
		req = req.WithContext(WithRole(WithUserID(req.Context(), "u1"), RoleUser))
		rec := httptest.NewRecorder()

		RequireAdmin(echoUser()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgAdminRequired)
	})

	t.Run("allows admins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/raffles", nil)
		req = req.WithContext(WithRole(WithUserID(req.Context(), "root"), RoleAdmin))
		rec := httptest.NewRecorder()

		RequireAdmin(echoUser()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "root:admin", rec.Body.String())
	})
}
