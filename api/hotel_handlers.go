package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gilby125/travellog/analytics"
	"github.com/gilby125/travellog/config"
	"github.com/gilby125/travellog/geocode"
	"github.com/gilby125/travellog/pkg/logger"
	"github.com/gilby125/travellog/travel"
	"github.com/gin-gonic/gin"
)

// HotelSearchRequest is a free-text location lookup used to prefill the
// hotel form.
type HotelSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// HotelSearchResponse is the resolved prefill. The client passes the
// coordinates back on submission; no resolver state is kept server-side.
type HotelSearchResponse struct {
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// HotelRequest represents a manual hotel entry. Lat/Lon come from a prior
// search, or stay 0.0 when no location was resolved.
type HotelRequest struct {
	Date    string  `json:"date" binding:"required"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Address string  `json:"address"`
	Nights  int     `json:"nights" binding:"required,min=1"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func hotelResponse(h travel.Hotel) gin.H {
	date := ""
	if !h.Date.IsZero() {
		date = h.Date.Format(travel.DateLayout)
	}
	return gin.H{
		"date":    date,
		"name":    h.Name,
		"city":    h.City,
		"address": h.Address,
		"nights":  h.Nights,
		"lat":     h.Lat,
		"lon":     h.Lon,
	}
}

// SearchHotel returns a handler that resolves a hotel query through the
// geocoder. Not-found and service failures never surface as 5xx pages to
// the form; they come back as structured errors the UI can show inline.
func SearchHotel(geocoder Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HotelSearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		loc, err := geocoder.Resolve(c.Request.Context(), req.Query)
		if errors.Is(err, geocode.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		if err != nil {
			logger.Warn("hotel search failed", "query", req.Query, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Location lookup failed"})
			return
		}

		c.JSON(http.StatusOK, HotelSearchResponse{
			Name:    loc.Name(),
			City:    loc.City(),
			Address: loc.DisplayName,
			Lat:     loc.Lat,
			Lon:     loc.Lon,
		})
	}
}

// ListHotels returns a handler for listing hotel stays within an optional
// date window.
func ListHotels(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end, err := dateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hotels, err := travel.LoadHotels(cfg.StoreConfig.HotelsPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hotels: " + err.Error()})
			return
		}

		filtered := analytics.FilterHotels(hotels, start, end)
		response := make([]gin.H, 0, len(filtered))
		for _, h := range filtered {
			response = append(response, hotelResponse(h))
		}
		c.JSON(http.StatusOK, response)
	}
}

// CreateHotel returns a handler for the manual hotel entry path.
func CreateHotel(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HotelRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		date, err := time.Parse(travel.DateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + req.Date})
			return
		}

		hotel, err := travel.NewHotel(travel.HotelForm{
			Date:    date,
			Name:    req.Name,
			City:    req.City,
			Address: req.Address,
			Nights:  req.Nights,
			Lat:     req.Lat,
			Lon:     req.Lon,
		})
		var verr *travel.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := travel.AppendHotel(cfg.StoreConfig.HotelsPath, hotel); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save hotel: " + err.Error()})
			return
		}

		logger.Info("hotel saved", "name", hotel.Name, "city", hotel.City, "nights", hotel.Nights)
		c.JSON(http.StatusCreated, hotelResponse(hotel))
	}
}

// ReplaceHotels returns a handler for the editable-grid save of the hotel
// table.
func ReplaceHotels(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []HotelRequest
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		hotels := make([]travel.Hotel, 0, len(rows))
		for i, row := range rows {
			date, err := time.Parse(travel.DateLayout, row.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("row %d: invalid date %q", i+1, row.Date)})
				return
			}
			hotels = append(hotels, travel.Hotel{
				Date:    date,
				Name:    row.Name,
				City:    row.City,
				Address: row.Address,
				Nights:  row.Nights,
				Lat:     row.Lat,
				Lon:     row.Lon,
			})
		}

		if err := travel.SaveHotels(cfg.StoreConfig.HotelsPath, hotels); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save hotels: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": len(hotels)})
	}
}
