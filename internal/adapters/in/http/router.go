package http

import (
	"log/slog"
	"net/http"

	"mailroom/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BaseURL prefixes every API route.
const BaseURL = "/api"

// bodyLimit covers a 2 MiB photo together with a base64 signature.
const bodyLimit = "8M"

// NewRouter wires the server into echo: the API under BaseURL behind Authenticate, the
// health check, the OpenAPI document and the Swagger UI.
func NewRouter(server *Server, doc *openapi3.T, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = server.HandleError

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http")))
	e.Use(middleware.BodyLimit(bodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BaseURL, Authenticate(server.queries.Authenticate))
	servers.RegisterHandlers(api, server)

	return e
}
