package api

import (
	"context"
	"net/http"

	"github.com/gilby125/travellog/config"
	"github.com/gilby125/travellog/geocode"
	"github.com/gilby125/travellog/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// Geocoder resolves free-text place queries; the hotel search endpoint
// depends on it.
type Geocoder interface {
	Resolve(ctx context.Context, query string) (*geocode.Location, error)
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, cfg *config.Config, geocoder Geocoder) {
	// Setup middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Flight routes
		v1.GET("/flights", ListFlights(cfg))
		v1.POST("/flights", CreateFlight(cfg))
		v1.PUT("/flights", ReplaceFlights(cfg))

		// Hotel routes
		v1.GET("/hotels", ListHotels(cfg))
		v1.POST("/hotels", CreateHotel(cfg))
		v1.PUT("/hotels", ReplaceHotels(cfg))
		v1.POST("/hotels/search", SearchHotel(geocoder))

		// Analytics routes
		v1.GET("/stats", GetStats(cfg))
		v1.GET("/report", GetReport(cfg))
	}
}
