package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports whether the backing stores are reachable.
type HealthCheck func(ctx context.Context) error

type Handlers struct {
	Airports  *AirportHandler
	Crews     *CrewHandler
	Airplanes *AirplaneHandler
	Flights   *FlightHandler
	Orders    *OrderHandler
	Users     *UserHandler
}

type RouterConfig struct {
	CORSOrigins  []string
	Capabilities Capabilities
	Tokens       IdentityParser
	Health       HealthCheck
}

// NewRouter wires every handler under /api. Reference data and orders live
// under /api/airport, accounts under /api/user.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), Metrics())
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	router.GET("/health", health(cfg.Health))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	access := NewAccess(cfg.Capabilities)

	airport := router.Group("/api/airport", Authenticate(cfg.Tokens))
	if h.Airports != nil {
		h.Airports.Register(airport, access)
	}
	if h.Crews != nil {
		h.Crews.Register(airport, access)
	}
	if h.Airplanes != nil {
		h.Airplanes.Register(airport, access)
	}
	if h.Flights != nil {
		h.Flights.Register(airport, access)
	}
	if h.Orders != nil {
		h.Orders.Register(airport, access)
	}

	if h.Users != nil {
		user := router.Group("/api/user", Authenticate(cfg.Tokens))
		h.Users.Register(user, access)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", IdempotencyHeader},
		ExposeHeaders: []string{"Content-Length", ReplayedHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func health(check HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
