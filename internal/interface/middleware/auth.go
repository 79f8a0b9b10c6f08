package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-diary-api/internal/application"
	"github.com/oksasatya/go-diary-api/internal/domain/entity"
)

// TokenVerifier returns the user id a bearer token was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserResolver loads the user behind a verified token.
type UserResolver interface {
	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
}

type userKey struct{}

func unauthenticated(msg string, err error) error {
	application.RecordAuthRejection()
	return &Rejection{Status: http.StatusUnauthorized, Message: msg, Err: err}
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Authenticate requires an "Authorization: Bearer <token>" header naming an
// existing user and attaches that user's public view to the context.
func Authenticate(verifier TokenVerifier, users UserResolver) Interceptor {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		token := bearerToken(r)
		if token == "" {
			return nil, unauthenticated("Access token required", application.ErrUnauthenticated)
		}
		userID, err := verifier.Verify(token)
		if err != nil {
			return nil, unauthenticated("Invalid or expired token", err)
		}
		u, err := users.CurrentUser(ctx, userID)
		if err != nil {
			if errors.Is(err, application.ErrUnauthenticated) {
				return nil, unauthenticated("Invalid or expired token", err)
			}
			return nil, err
		}
		return context.WithValue(ctx, userKey{}, u.Public()), nil
	}
}

// UserFromContext returns the authenticated user stored by Authenticate.
func UserFromContext(ctx context.Context) (entity.PublicUser, bool) {
	u, ok := ctx.Value(userKey{}).(entity.PublicUser)
	return u, ok
}

// CurrentUser is UserFromContext for a gin handler.
func CurrentUser(c *gin.Context) (entity.PublicUser, bool) {
	return UserFromContext(c.Request.Context())
}
