package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/upkyp/visit-booking-service/internal/handler"
	"github.com/upkyp/visit-booking-service/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems probe this endpoint to
	// verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /api/auth,
// while protected endpoints live under /api.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session: register,
	// login, refresh, logout.  Each handler is responsible for
	// generating or exchanging tokens.
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token: the presented token is
	// revoked and a brand-new pair is issued.
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body containing a `refresh_token` and
	// invalidates it.  No JWT is required; possession of the refresh
	// token is the credential.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  Both roles are
	// accepted here; role-scoped endpoints have their own groups.
	auth := e.Group("/api")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("LANDLORD", "TENANT"))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers unauthenticated browse endpoints.  The
// PublicHandler returns sanitized data so guests can browse active
// listings before registering.  The cache middleware is applied only
// here; authenticated responses are never cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	e.GET("/api/properties", p.GetPublicProperties, cache)
}
