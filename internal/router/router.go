package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"showcase/internal/handler"
)

// Register wires routes and middleware. Reads are public; every
// mutating route runs through the authorization middleware.
func Register(
	e *echo.Echo,
	authMiddleware echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	reviewHandler *handler.ReviewHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)
	api.GET("/projects/:id/reviews", reviewHandler.ListByProject)

	// Secured routes (bearer token verified against the provider)
	secured := api.Group("", authMiddleware)
	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.POST("/projects", projectHandler.Create)
	secured.PUT("/projects/:id", projectHandler.Update)
	secured.PATCH("/projects/:id/transform", projectHandler.UpdateTransform)
	secured.DELETE("/projects/:id", projectHandler.Delete)
	secured.POST("/projects/:id/reviews", reviewHandler.Create)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator used by all handlers.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
