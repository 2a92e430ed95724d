package middleware

import (
	"net/http"
	"strings"

	"servicescale/internal/auth"
	"servicescale/pkg"

	"github.com/gin-gonic/gin"
)

// ContextKeyOwnerID holds the owner id in the gin context for handlers that
// prefer c.GetString over the request context.
const ContextKeyOwnerID = "ownerID"

var (
	errMissingAuthorization = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header required", http.StatusUnauthorized)
	errMalformedBearer      = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header format must be Bearer {token}", http.StatusUnauthorized)
	errInvalidToken         = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// AuthMiddleware validates the bearer token and attaches its owner to the
// request context, where every use case reads it from.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(errMissingAuthorization.HTTPStatus, errMissingAuthorization.ToHTTPError())
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(errMalformedBearer.HTTPStatus, errMalformedBearer.ToHTTPError())
			return
		}

		claims, err := auth.ValidateJWT(parts[1], jwtSecret)
		if err != nil || claims.Owner() == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		owner := claims.Owner()
		c.Set(ContextKeyOwnerID, owner)
		c.Request = c.Request.WithContext(auth.WithOwnerID(c.Request.Context(), owner))

		c.Next()
	}
}
