package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	detailNotFound            = "Item not found"
	detailWrongCredentials    = "Incorrect username or password"
	detailNotAuthenticated    = "Not authenticated"
	detailInvalidCredentials  = "Could not validate credentials"
	detailInternalServerError = "Internal server error"

	authenticateHeader = "WWW-Authenticate"
	bearerScheme       = "Bearer"
)

// Err is the JSON error body. AppErr is kept for logging and never rendered.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Detail         string `json:"detail"`
	AppErr         error  `json:"-"`
}

func (e *Err) Error() string {
	if e.AppErr != nil {
		return fmt.Sprintf("%d %s: %v", e.HTTPStatusCode, e.Detail, e.AppErr)
	}

	return fmt.Sprintf("%d %s", e.HTTPStatusCode, e.Detail)
}

func RenderErr(ctx *gin.Context, e *Err) {
	fields := []zap.Field{
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.FullPath()),
		zap.Int("status", e.HTTPStatusCode),
		zap.Error(e.AppErr),
	}

	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.Detail, fields...)
	} else {
		zap.L().Debug(e.Detail, fields...)
	}

	if e.HTTPStatusCode == http.StatusUnauthorized {
		ctx.Header(authenticateHeader, bearerScheme)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Detail:         err.Error(),
		AppErr:         err,
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Detail:         detailNotFound,
		AppErr:         fmt.Errorf("%s with %s %v not found", resource, key, value),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Detail:         detailWrongCredentials,
		AppErr:         err,
	}
}

func ErrNotAuthenticated(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Detail:         detailNotAuthenticated,
		AppErr:         err,
	}
}

func ErrInvalidCredentials(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Detail:         detailInvalidCredentials,
		AppErr:         err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Detail:         detailInternalServerError,
		AppErr:         err,
	}
}
