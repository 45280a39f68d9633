package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtline/CourtBookingService/internal/access"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func signToken(t *testing.T, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func subjectCapturingHandler(captured *access.Subject) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, ok := SubjectFromContext(r.Context()); ok {
			*captured = s
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthWithBearerToken(t *testing.T) {
	auth := NewAuth(testSecret, false, nopLogger{})

	var got access.Subject
	srv := auth.Middleware(subjectCapturingHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "42", "staff"))
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, access.RoleStaff, got.Role)
}

func TestAuthRejectsBadToken(t *testing.T) {
	auth := NewAuth(testSecret, false, nopLogger{})
	srv := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	foreignToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42", "role": "staff"})
	foreignSigned, err := foreignToken.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	for name, header := range map[string]string{
		"garbage":      "Bearer not-a-token",
		"wrong secret": "Bearer " + foreignSigned,
		"unknown role": "Bearer " + signToken(t, "42", "superuser"),
		"missing":      "",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestAuthHeaderIdentityFallback(t *testing.T) {
	auth := NewAuth(testSecret, true, nopLogger{})

	var got access.Subject
	srv := auth.Middleware(subjectCapturingHandler(&got))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-User-Role", "customer")
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, access.RoleCustomer, got.Role)
}

func TestAuthHeaderIdentityDisabled(t *testing.T) {
	auth := NewAuth(testSecret, false, nopLogger{})
	srv := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-User-Role", "customer")
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePermission(t *testing.T) {
	auth := NewAuth(testSecret, true, nopLogger{})
	protected := auth.Middleware(RequirePermission(access.ActionManageCourts)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

	cases := []struct {
		role string
		want int
	}{
		{"administrator", http.StatusOK},
		{"staff", http.StatusForbidden},
		{"customer", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/courts", nil)
		req.Header.Set("X-User-ID", "1")
		req.Header.Set("X-User-Role", tc.role)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)
		assert.Equal(t, tc.want, rec.Code, tc.role)
	}
}
