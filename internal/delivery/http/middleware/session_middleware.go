package middleware

import (
	"context"
	"net/http"

	"go-product-catalog/pkg/jwt"
	"go-product-catalog/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"

	SessionCookieName = "catalog_session"
)

type SessionMiddleware struct {
	tokenService *jwt.SessionTokenService
	log          *logrus.Logger
	secure       bool
}

func NewSessionMiddleware(tokenService *jwt.SessionTokenService, log *logrus.Logger, secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		tokenService: tokenService,
		log:          log,
		secure:       secure,
	}
}

// Handle attaches the browser's session id to the request context, issuing a
// new session cookie when none is present or the existing one is invalid.
func (m *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			if claims, err := m.tokenService.ValidateToken(cookie.Value); err == nil {
				ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		token, sessionID, err := m.tokenService.GenerateSessionToken()
		if err != nil {
			m.log.Errorf("Failed to issue session token: %+v", err)
			response.InternalServerError(w, "Failed to start session")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(m.tokenService.GetTTL().Seconds()),
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionIDFromContext extracts the session id from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}
