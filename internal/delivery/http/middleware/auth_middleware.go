package middleware

import (
	"context"
	"net/http"
	"strings"

	"facility-booking/internal/domain/entity"
	"facility-booking/internal/service"
	"facility-booking/pkg/jwt"
	"facility-booking/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ViewerKey  contextKey = "viewer"
	TokenIDKey contextKey = "token_id"
)

// SessionMiddleware resolves the optional viewer from the host app's bearer
// token. Requests without a usable token continue anonymously; the booking
// rules decide what an anonymous viewer may do.
type SessionMiddleware struct {
	jwtService   *jwt.JWTService
	sessionStore service.SessionStore
	log          *logrus.Logger
}

func NewSessionMiddleware(jwtService *jwt.JWTService, sessionStore service.SessionStore, log *logrus.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService:   jwtService,
		sessionStore: sessionStore,
		log:          log,
	}
}

func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.log.Debugf("Ignoring invalid session token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		// Check if token exists in the session store (not revoked)
		exists, err := m.sessionStore.Exists(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to validate session token: %+v", err)
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if !exists {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ViewerKey, claims.Viewer())
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetViewerFromContext returns the session user, or nil and false when anonymous
func GetViewerFromContext(ctx context.Context) (*entity.Viewer, bool) {
	viewer, ok := ctx.Value(ViewerKey).(*entity.Viewer)
	return viewer, ok && viewer != nil
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
