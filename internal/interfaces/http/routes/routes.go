package routes

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/interfaces/http/handlers"
	tickethandlers "quickdesk/internal/interfaces/http/handlers/ticket"
	"quickdesk/internal/interfaces/http/middleware"
)

// RouteConfig holds every handler the API serves.
type RouteConfig struct {
	AuthHandler     *handlers.AuthHandler
	UserHandler     *handlers.UserHandler
	CategoryHandler *handlers.CategoryHandler
	TicketHandler   *tickethandlers.TicketHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupRoutes(engine *gin.Engine, cfg *RouteConfig) {
	setupAuthRoutes(engine, cfg)
	setupUserRoutes(engine, cfg)
	setupCategoryRoutes(engine, cfg)
	setupTicketRoutes(engine, cfg)
}

func setupAuthRoutes(engine *gin.Engine, cfg *RouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
	}
}

func setupUserRoutes(engine *gin.Engine, cfg *RouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// The staff listing must register before the parameterized route.
		users.GET("/staff", cfg.UserHandler.ListStaff)
		users.GET("", cfg.UserHandler.ListUsers)
		users.PATCH("/:id", cfg.UserHandler.UpdateUser)
	}
}

func setupCategoryRoutes(engine *gin.Engine, cfg *RouteConfig) {
	categories := engine.Group("/categories")
	categories.Use(cfg.AuthMiddleware.RequireAuth())
	{
		categories.GET("", cfg.CategoryHandler.ListCategories)
		categories.POST("", cfg.CategoryHandler.CreateCategory)
		categories.PATCH("/:id", cfg.CategoryHandler.UpdateCategory)
	}
}

func setupTicketRoutes(engine *gin.Engine, cfg *RouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
		tickets.POST("/:id/votes", cfg.TicketHandler.CastVote)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PATCH("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", cfg.TicketHandler.DeleteTicket)
	}

	dashboard := engine.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/stats", cfg.TicketHandler.GetDashboardStats)
	}

	attachments := engine.Group("/attachments")
	attachments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		attachments.GET("/:id", cfg.TicketHandler.DownloadAttachment)
	}
}
