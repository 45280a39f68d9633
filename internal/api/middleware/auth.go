package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/courtline/CourtBookingService/internal/access"
	"github.com/courtline/CourtBookingService/internal/api/handlers"
)

type subjectContextKey struct{}

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Logger is the leveled printf logger.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth authenticates requests and puts an access.Subject into the
// request context. Bearer tokens are HS256 JWTs with "sub" and "role"
// claims; when allowHeaderIdentity is set (internal deployments behind
// a trusted gateway), X-User-ID/X-User-Role headers are accepted as a
// fallback.
type Auth struct {
	secret              []byte
	allowHeaderIdentity bool
	logger              Logger
}

// NewAuth creates the auth middleware.
func NewAuth(jwtSecret string, allowHeaderIdentity bool, logger Logger) *Auth {
	return &Auth{
		secret:              []byte(jwtSecret),
		allowHeaderIdentity: allowHeaderIdentity,
		logger:              logger,
	}
}

// Middleware wraps next with authentication.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := a.authenticate(r)
		if !ok {
			handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withSubject(r.Context(), subject)))
	})
}

func (a *Auth) authenticate(r *http.Request) (access.Subject, bool) {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return a.fromToken(strings.TrimPrefix(auth, "Bearer "))
	}
	if a.allowHeaderIdentity {
		return a.fromHeaders(r)
	}
	return access.Subject{}, false
}

func (a *Auth) fromToken(raw string) (access.Subject, bool) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		a.logger.Warn("Auth: invalid token: %v", err)
		return access.Subject{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Subject{}, false
	}

	sub, err := claims.GetSubject()
	if err != nil {
		a.logger.Warn("Auth: token missing sub claim")
		return access.Subject{}, false
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		a.logger.Warn("Auth: non-numeric sub claim %q", sub)
		return access.Subject{}, false
	}

	roleClaim, _ := claims["role"].(string)
	role, ok := access.ParseRole(roleClaim)
	if !ok {
		a.logger.Warn("Auth: unknown role claim %q for user=%d", roleClaim, userID)
		return access.Subject{}, false
	}

	return access.Subject{UserID: userID, Role: role}, true
}

func (a *Auth) fromHeaders(r *http.Request) (access.Subject, bool) {
	userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
	if err != nil || userID <= 0 {
		return access.Subject{}, false
	}
	role, ok := access.ParseRole(r.Header.Get(headerUserRole))
	if !ok {
		return access.Subject{}, false
	}
	return access.Subject{UserID: userID, Role: role}, true
}

func withSubject(ctx context.Context, s access.Subject) context.Context {
	return context.WithValue(ctx, subjectContextKey{}, s)
}

// SubjectFromContext returns the authenticated subject, if any.
func SubjectFromContext(ctx context.Context) (access.Subject, bool) {
	s, ok := ctx.Value(subjectContextKey{}).(access.Subject)
	return s, ok
}

// RequirePermission denies the request unless the authenticated role is
// allowed to perform action. Runs after Auth.
func RequirePermission(action access.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, ok := SubjectFromContext(r.Context())
			if !ok {
				handlers.RespondError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !access.Allowed(subject.Role, action) {
				handlers.RespondForbidden(w, "operation not permitted for this role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
