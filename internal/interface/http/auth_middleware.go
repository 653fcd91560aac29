package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/medifind/internal/domain/account"
	apperrors "github.com/yanqian/medifind/pkg/errors"
)

func authMiddleware(provider account.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing authorization header", nil))
			return
		}
		if !authenticate(c, provider, header) {
			return
		}
		c.Next()
	}
}

// optionalAuthMiddleware attaches claims when a bearer token is present and
// rejects only tokens that fail validation.
func optionalAuthMiddleware(provider account.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" && !authenticate(c, provider, header) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, provider account.AuthProvider, header string) bool {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "invalid authorization header", nil))
		return false
	}
	claims, err := provider.ValidateToken(c.Request.Context(), strings.TrimSpace(parts[1]))
	if err != nil {
		status := http.StatusForbidden
		code := apperrors.CodeInvalidToken
		if !apperrors.IsCode(err, apperrors.CodeInvalidToken) {
			status = http.StatusInternalServerError
			code = "auth_failed"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return false
	}
	setClaims(c, claims)
	return true
}
