package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vimco/vimco-api/internal/modules/serializer"
	"github.com/vimco/vimco-api/internal/modules/service"
)

const adminClaimsKey = "admin"

// AdminAuth guards back-office routes with a bearer token issued by the auth service.
// A nil verifier disables the check so the open deployment mode keeps working.
func AdminAuth(verifier service.AuthService) gin.HandlerFunc {
	if verifier == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		claims, err := verifier.Verify(c.Request.Context(), raw)
		if err != nil {
			if errors.Is(err, service.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr(err))
			return
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("admin", claims.Subject))
		}

		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// AdminClaims returns the claims AdminAuth stored on the request.
func AdminClaims(c *gin.Context) (*service.Claims, bool) {
	v, ok := c.Get(adminClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok
}
