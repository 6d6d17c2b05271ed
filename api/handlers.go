package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gilby125/travellog/analytics"
	"github.com/gilby125/travellog/config"
	"github.com/gilby125/travellog/pkg/logger"
	"github.com/gilby125/travellog/report"
	"github.com/gilby125/travellog/travel"
	"github.com/gin-gonic/gin"
)

// FlightRequest represents a manual flight entry. Miles 0 requests
// auto-calculation from the airport reference table.
type FlightRequest struct {
	Date        string `json:"date" binding:"required"`
	Airline     string `json:"airline" binding:"required"`
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Miles       int    `json:"miles" binding:"min=0"`
}

// FlightRow represents one row of the editable flight grid; the replace
// endpoint trusts these wholesale.
type FlightRow struct {
	Date        string  `json:"date" binding:"required"`
	Airline     string  `json:"airline"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Miles       int     `json:"miles"`
	OriginLat   float64 `json:"origin_lat"`
	OriginLon   float64 `json:"origin_lon"`
	DestLat     float64 `json:"dest_lat"`
	DestLon     float64 `json:"dest_lon"`
}

// FlightResponse is a flight record annotated with its route tier for
// rendering intensity.
type FlightResponse struct {
	FlightRow
	Route string `json:"route"`
	Tier  string `json:"tier"`
}

func flightRow(f travel.Flight) FlightRow {
	return FlightRow{
		Date:        f.Date.Format(travel.DateLayout),
		Airline:     f.Airline,
		Origin:      f.Origin,
		Destination: f.Destination,
		Miles:       f.Miles,
		OriginLat:   f.OriginLat,
		OriginLon:   f.OriginLon,
		DestLat:     f.DestLat,
		DestLon:     f.DestLon,
	}
}

// maxRangeEnd is the open upper bound used when no end filter is given.
var maxRangeEnd = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// dateRange parses the optional inclusive start/end query parameters.
func dateRange(c *gin.Context) (time.Time, time.Time, error) {
	start := time.Time{}
	end := maxRangeEnd
	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(travel.DateLayout, raw)
		if err != nil {
			return start, end, fmt.Errorf("invalid start date %q", raw)
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(travel.DateLayout, raw)
		if err != nil {
			return start, end, fmt.Errorf("invalid end date %q", raw)
		}
		end = parsed
	}
	return start, end, nil
}

// ListFlights returns a handler for listing flights within an optional
// date window, each annotated with its route-frequency tier.
func ListFlights(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, end, err := dateRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		flights, err := travel.LoadFlights(cfg.StoreConfig.FlightsPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load flights: " + err.Error()})
			return
		}

		filtered := analytics.FilterFlights(flights, start, end)
		counts := analytics.RouteCounts(filtered)

		response := make([]FlightResponse, 0, len(filtered))
		for _, f := range filtered {
			route := analytics.RouteKey(f.Origin, f.Destination)
			response = append(response, FlightResponse{
				FlightRow: flightRow(f),
				Route:     route,
				Tier:      string(analytics.Classify(counts[route])),
			})
		}
		c.JSON(http.StatusOK, response)
	}
}

// CreateFlight returns a handler for the manual flight entry path.
// Validation failures are surfaced to the user and block persistence.
func CreateFlight(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FlightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		date, err := time.Parse(travel.DateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + req.Date})
			return
		}

		flight, err := travel.NewFlight(travel.FlightForm{
			Date:        date,
			Airline:     req.Airline,
			Origin:      req.Origin,
			Destination: req.Destination,
			Miles:       req.Miles,
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

		if err := travel.AppendFlight(cfg.StoreConfig.FlightsPath, flight); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save flight: " + err.Error()})
			return
		}

		logger.Info("flight saved", "origin", flight.Origin, "destination", flight.Destination, "miles", flight.Miles)
		c.JSON(http.StatusCreated, flightRow(flight))
	}
}

// ReplaceFlights returns a handler for the editable-grid save: the
// submitted rows replace the flight table wholesale.
func ReplaceFlights(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []FlightRow
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		flights := make([]travel.Flight, 0, len(rows))
		for i, row := range rows {
			date, err := time.Parse(travel.DateLayout, row.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("row %d: invalid date %q", i+1, row.Date)})
				return
			}
			flights = append(flights, travel.Flight{
				Date:        date,
				Airline:     row.Airline,
				Origin:      row.Origin,
				Destination: row.Destination,
				Miles:       row.Miles,
				OriginLat:   row.OriginLat,
				OriginLon:   row.OriginLon,
				DestLat:     row.DestLat,
				DestLon:     row.DestLon,
			})
		}

		if err := travel.SaveFlights(cfg.StoreConfig.FlightsPath, flights); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save flights: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": len(flights)})
	}
}

// StatsResponse carries the dashboard aggregates for a date window.
type StatsResponse struct {
	Summary           analytics.Summary `json:"summary"`
	MonthlyMiles      map[string]int    `json:"monthly_miles"`
	HotelNights       map[string]int    `json:"hotel_nights"`
	DestinationVisits map[string]int    `json:"destination_visits"`
	Routes            map[string]string `json:"routes"` // route key -> tier
}

func loadFilteredRecords(cfg *config.Config, c *gin.Context) ([]travel.Flight, []travel.Hotel, bool) {
	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	flights, err := travel.LoadFlights(cfg.StoreConfig.FlightsPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load flights: " + err.Error()})
		return nil, nil, false
	}
	hotels, err := travel.LoadHotels(cfg.StoreConfig.HotelsPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hotels: " + err.Error()})
		return nil, nil, false
	}

	return analytics.FilterFlights(flights, start, end), analytics.FilterHotels(hotels, start, end), true
}

// GetStats returns a handler for the dashboard aggregates.
func GetStats(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		flights, hotels, ok := loadFilteredRecords(cfg, c)
		if !ok {
			return
		}

		routes := map[string]string{}
		for route, count := range analytics.RouteCounts(flights) {
			routes[route] = string(analytics.Classify(count))
		}

		c.JSON(http.StatusOK, StatsResponse{
			Summary:           analytics.Summarize(flights, hotels),
			MonthlyMiles:      analytics.MonthlyMiles(flights),
			HotelNights:       analytics.NightsByHotel(hotels),
			DestinationVisits: analytics.VisitsByDestination(flights),
			Routes:            routes,
		})
	}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetReport returns a handler that renders the analytics workbook for a
// date window as an xlsx download.
func GetReport(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		flights, hotels, ok := loadFilteredRecords(cfg, c)
		if !ok {
			return
		}

		var buf bytes.Buffer
		err := report.Write(&buf, report.Data{
			Summary:      analytics.Summarize(flights, hotels),
			MonthlyMiles: analytics.MonthlyMiles(flights),
			HotelNights:  analytics.NightsByHotel(hotels),
			Visits:       analytics.VisitsByDestination(flights),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report: " + err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="travel_report.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
