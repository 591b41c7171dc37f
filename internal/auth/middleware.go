package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"softdesk/internal/authz"
	"softdesk/internal/repository"
)

// actorContextKey is the echo context key holding the resolved actor.
const actorContextKey = "actor"

// ActorMiddleware resolves the bearer token of an inbound request to a user
// record and stores it in the context as an explicit actor. Every downstream
// authorization check reads the actor from the request, never from ambient
// state.
func ActorMiddleware(jwtService *JWTService, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}

			c.Set(actorContextKey, authz.Actor{User: user})
			return next(c)
		}
	}
}

// ActorFromContext returns the actor set by ActorMiddleware, or the anonymous
// actor if none was set.
func ActorFromContext(c echo.Context) authz.Actor {
	if actor, ok := c.Get(actorContextKey).(authz.Actor); ok {
		return actor
	}
	return authz.Actor{}
}
