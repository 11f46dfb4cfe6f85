// Package server exposes the wayfinding core to the browser UI over HTTP.
package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ashwin-A21/mallnav/pkg/nav"
	"github.com/Ashwin-A21/mallnav/pkg/venue"
)

// Server serves the venue scene, route planning and visibility queries.
type Server struct {
	venue    *venue.Venue
	resolver *nav.Resolver
	port     int
}

// New creates a server for an already loaded venue.
func New(v *venue.Venue, port int) *Server {
	return &Server{
		venue:    v,
		resolver: nav.NewResolver(v.Graph, v.Places()),
		port:     port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	router := s.Router()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("mallnav server starting on http://localhost%s", addr)
	log.Printf("Venue: %s", s.venue.Manifest.Name)

	return router.Run(addr)
}

// Router builds the gin engine with all routes registered. Split out so
// handler tests can drive it directly.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), cors())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/venue", s.handleVenue)
		api.GET("/scene", s.handleScene)
		api.GET("/validation", s.handleValidation)
		api.GET("/resolve", s.handleResolve)
		api.POST("/route", s.handleRoute)
		api.POST("/visibility", s.handleVisibility)
	}

	return router
}

// requestLogger logs each request with latency and status.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.Printf("[%s] %s %s %d %v %s",
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
			c.Errors.String(),
		)
	}
}

// cors allows the renderer dev server to call the API cross-origin.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
