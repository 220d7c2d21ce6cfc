package http

import (
	"log/slog"

	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/identity"
	"mailroom/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const callerKey = "mailroom.caller"

// publicRoutes are served without a bearer token.
var publicRoutes = map[string]struct{}{
	"/api/login": {},
}

// Authenticate resolves the bearer token of every non-public route into the caller.
// Requests without a valid token never reach a handler.
func Authenticate(authenticator AuthenticateHandler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if _, ok := publicRoutes[ctx.Path()]; ok {
				return next(ctx)
			}

			query, err := queries.NewAuthenticateQuery(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}
			caller, err := authenticator.Handle(ctx.Request().Context(), query)
			if err != nil {
				return err
			}
			ctx.Set(callerKey, caller)
			return next(ctx)
		}
	}
}

// caller returns the authenticated caller. A request that skipped Authenticate gets a
// zero actor, which every use case rejects.
func caller(ctx echo.Context) (identity.Actor, kernel.UUID) {
	c, _ := ctx.Get(callerKey).(queries.AuthenticateQueryResponse)
	return c.Actor, c.SessionID
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.Warn("request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}
