package main

import (
	"log"

	"najma_site_go/config"
	"najma_site_go/handlers"
	"najma_site_go/middleware"
	"najma_site_go/services"
	"najma_site_go/services/i18n"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Translations and static content are embedded and loaded once
	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	if err := services.InitializeCatalog(cfg.CatalogPath); err != nil {
		log.Fatalf("Failed to load site content: %v", err)
	}

	services.InitializeForms(cfg)
	services.InitializeMedia(cfg)
	middleware.InitAssetVersions(cfg.StaticDir)
	handlers.InitSite(cfg)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSPNonce(cfg))
	e.Use(middleware.CSRF(cfg))

	// Static files
	e.Static("/static", cfg.StaticDir)

	// Page
	e.GET("/", handlers.LandingHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)

	// Counter streams
	e.GET("/counters/:id", handlers.CounterStreamHandler)

	// Quote dialog fragments
	e.GET("/quote", handlers.QuoteOpenHandler)
	e.GET("/quote/close", handlers.QuoteCloseHandler)
	e.POST("/quote", handlers.QuotePostHandler, middleware.QuoteRateLimiter.Middleware())

	// Newsletter fragments
	e.POST("/newsletter", handlers.NewsletterPostHandler, middleware.NewsletterRateLimiter.Middleware())
	e.GET("/newsletter/status", handlers.NewsletterStatusHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
