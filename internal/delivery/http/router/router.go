// Package router contains routing setup for the HTTP delivery.
package router

import (
	"bluecarbon/internal/delivery/http/middleware"
	"bluecarbon/internal/delivery/http/router/handler"
	"bluecarbon/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	SiteHandler         *handler.SiteHandler
	RecordHandler       *handler.RecordHandler
	VerificationHandler *handler.VerificationHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	siteHandler         *handler.SiteHandler
	recordHandler       *handler.RecordHandler
	verificationHandler *handler.VerificationHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		siteHandler:         params.SiteHandler,
		recordHandler:       params.RecordHandler,
		verificationHandler: params.VerificationHandler,
		dashboardHandler:    params.DashboardHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/", r.dashboardHandler.Summary)

	// Account routes, no authentication required.
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)
	e.POST("/auth/refresh", r.userHandler.Refresh)
	e.POST("/logout", r.userHandler.Logout)

	authenticate := r.authMiddleware.Authenticate
	submitterOnly := r.authMiddleware.RequireRole(entity.RoleNGO, entity.RoleCommunity)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Site and record routes for NGO and community accounts.
	e.GET("/add-project", r.siteHandler.ListSites, authenticate, submitterOnly)
	e.POST("/add-project", r.siteHandler.CreateSite, authenticate, submitterOnly)
	e.GET("/upload-record", r.recordHandler.ListRecords, authenticate, submitterOnly)
	e.POST("/upload-record", r.recordHandler.SubmitRecord, authenticate, submitterOnly)
	e.GET("/ngo-dashboard", r.dashboardHandler.OwnerDashboard, authenticate, submitterOnly)

	// Review routes, admin only.
	e.GET("/admin-dashboard", r.dashboardHandler.AdminDashboard, authenticate, adminOnly)
	e.GET("/verify-record", r.verificationHandler.ListPending, authenticate, adminOnly)
	e.POST("/verify-record/:record_id", r.verificationHandler.VerifyRecord, authenticate, adminOnly)

	// Certificates are visible to their owners and to admins; the usecase
	// enforces the ownership check.
	e.GET("/credits/:credit_id/certificate", r.verificationHandler.CreditCertificate, authenticate)
}
