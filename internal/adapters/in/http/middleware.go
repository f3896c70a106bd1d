package http

import (
	"strings"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/tokens"

	"github.com/labstack/echo/v4"
)

// ctxActor is the echo context key under which the authenticated actor is stored.
const ctxActor = "actor"

// BearerAuth parses the Authorization header and stores the authenticated
// actor in the request context. Requests without a valid bearer token are
// rejected with 401.
func BearerAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				return respondError(ctx, errs.NewAuthRequiredError())
			}

			claims, err := tokens.AccessClaimsFromToken(tokenStr, secret)
			if err != nil {
				return respondError(ctx, errs.NewAuthRequiredErrorWithCause(err))
			}

			userID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return respondError(ctx, errs.NewAuthRequiredErrorWithCause(err))
			}

			ctx.Set(ctxActor, services.Actor{
				ID:      userID,
				IsAdmin: claims.Admin,
			})

			return next(ctx)
		}
	}
}

// actorFromContext retrieves the actor stored by BearerAuth. On routes
// without the middleware the zero actor is returned, which fails actor
// validation downstream.
func actorFromContext(ctx echo.Context) services.Actor {
	actor, _ := ctx.Get(ctxActor).(services.Actor)
	return actor
}
