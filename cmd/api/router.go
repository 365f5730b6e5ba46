package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brandsite-backend/internal/shared/middleware"
	"brandsite-backend/internal/shared/response"
	"brandsite-backend/pkg/container"
)

// Rate limits, expressed as requests per window.
const (
	globalLimit  = 100
	globalWindow = 15 * time.Minute

	authLimit  = 5
	authWindow = time.Hour

	contactLimit  = 3
	contactWindow = time.Hour
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.RateLimit(c.Cache, "global", globalLimit, globalWindow),
	)

	// Local storage serves processed images straight from disk.
	if c.Config.Storage.Driver == "local" {
		router.Static("/uploads", c.Config.Storage.UploadDir)
	}

	api := router.Group("/api/v1")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupBlogRoutes(api, c)
		setupServiceRoutes(api, c)
		setupBannerRoutes(api, c)
		setupContactRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(c.Cache, "auth", authLimit, authWindow))
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", middleware.Auth(c.JWTManager), c.UserHandler.Logout)
		auth.GET("/me", middleware.Auth(c.JWTManager), c.UserHandler.Me)
		auth.PUT("/password", middleware.Auth(c.JWTManager), c.UserHandler.ChangePassword)
	}
}

func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	blogs := api.Group("/blogs")
	{
		blogs.GET("", middleware.OptionalAuth(c.JWTManager), c.BlogHandler.List)
		blogs.GET("/featured", c.BlogHandler.Featured)
		blogs.GET("/categories", c.BlogHandler.Categories)
		blogs.GET("/:identifier", middleware.OptionalAuth(c.JWTManager), c.BlogHandler.Get)

		admin := blogs.Group("", middleware.Auth(c.JWTManager), middleware.AdminOnly())
		{
			admin.POST("", c.BlogHandler.Create)
			admin.PUT("/:id", c.BlogHandler.Update)
			admin.DELETE("/:id", c.BlogHandler.Delete)
		}
	}
}

func setupServiceRoutes(api *gin.RouterGroup, c *container.Container) {
	services := api.Group("/services")
	{
		services.GET("", middleware.OptionalAuth(c.JWTManager), c.ServicesHandler.List)
		services.GET("/:identifier", middleware.OptionalAuth(c.JWTManager), c.ServicesHandler.Get)

		admin := services.Group("", middleware.Auth(c.JWTManager), middleware.AdminOnly())
		{
			admin.POST("", c.ServicesHandler.Create)
			admin.PUT("/:id", c.ServicesHandler.Update)
			admin.DELETE("/:id", c.ServicesHandler.Delete)
		}
	}
}

func setupBannerRoutes(api *gin.RouterGroup, c *container.Container) {
	banners := api.Group("/banners")
	{
		banners.GET("/active", c.BannerHandler.Active)

		admin := banners.Group("", middleware.Auth(c.JWTManager), middleware.AdminOnly())
		{
			admin.GET("", c.BannerHandler.ListAll)
			admin.POST("", c.BannerHandler.Create)
			admin.PUT("/:id", c.BannerHandler.Update)
			admin.DELETE("/:id", c.BannerHandler.Delete)
		}
	}
}

func setupContactRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/contact",
		middleware.RateLimit(c.Cache, "contact", contactLimit, contactWindow),
		c.ContactHandler.Submit,
	)

	contacts := api.Group("/contacts", middleware.Auth(c.JWTManager), middleware.AdminOnly())
	{
		contacts.GET("", c.ContactHandler.List)
		contacts.GET("/export", c.ContactHandler.Export)
		contacts.GET("/:id", c.ContactHandler.Get)
		contacts.PATCH("/:id", c.ContactHandler.Update)
		contacts.DELETE("/:id", c.ContactHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			response.Success(ctx, http.StatusServiceUnavailable, health)
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			health["cache"] = err.Error()
		}

		response.Success(ctx, http.StatusOK, health)
	}
}
