package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/stockboard-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/stockboard-api/internal/domain"
	"github.com/vietanh2810/stockboard-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/stockboard-api/internal/service"
)

const currentUserKey = "currentUser"

var (
	errMissingAuthHeader = errors.New("missing bearer authorization header")
)

type UserResolver interface {
	GetActiveUser(ctx context.Context, username string) (domain.User, error)
}

type Authenticator struct {
	signingKey []byte
	users      UserResolver
}

func NewAuthenticator(signingKey string, users UserResolver) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		users:      users,
	}
}

// VerifyJWT rejects the request unless it carries a valid bearer token for an active user.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			response.RenderErr(ctx, response.ErrNotAuthenticated(errMissingAuthHeader))
			return
		}

		username, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrInvalidCredentials(fmt.Errorf("jwthelper.ParseToken -> %w", err)))
			return
		}

		user, err := a.users.GetActiveUser(ctx.Request.Context(), username)
		if err != nil {
			err = fmt.Errorf("a.users.GetActiveUser -> %w", err)
			if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrUserDisabled) {
				response.RenderErr(ctx, response.ErrInvalidCredentials(err))
				return
			}

			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user stored by VerifyJWT.
func CurrentUser(ctx *gin.Context) (domain.User, bool) {
	v, ok := ctx.Get(currentUserKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)

	return user, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
