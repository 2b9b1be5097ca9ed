package routes

import (
	"net/http"
	"time"

	"stagebook/internal/artists"
	"stagebook/internal/shared/config"
	"stagebook/internal/shared/database"
	"stagebook/internal/shows"
	"stagebook/internal/venues"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	// The booking-listing surface lives at the root, matching the pages the
	// frontend links to.
	root := engine.Group("")
	{
		r.setupVenueRoutes(root)
		r.setupArtistRoutes(root)
		r.setupShowRoutes(root)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "stagebook",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "stagebook",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	venueService := venues.NewService(venueRepo)
	venueController := venues.NewController(venueService)

	venues.SetupVenueRoutes(rg, venueController)
}

func (r *Router) setupArtistRoutes(rg *gin.RouterGroup) {
	artistRepo := artists.NewRepository(r.db.GetPostgreSQL())
	artistService := artists.NewService(artistRepo)
	artistController := artists.NewController(artistService)

	artists.SetupArtistRoutes(rg, artistController)
}

func (r *Router) setupShowRoutes(rg *gin.RouterGroup) {
	showRepo := shows.NewRepository(r.db.GetPostgreSQL())
	showService := shows.NewService(showRepo)
	showController := shows.NewController(showService)

	shows.SetupShowRoutes(rg, showController)
}
