package server

import (
	"fmt"
	"strconv"

	"alertmon/internal/handlers"

	"github.com/gin-gonic/gin"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	router        *gin.Engine
	alertHandler  *handlers.AlertHandler
	healthHandler *handlers.HealthHandler
	port          int
}

func New(alertHandler *handlers.AlertHandler, healthHandler *handlers.HealthHandler, port int) *Server {
	return &Server{
		router:        gin.Default(),
		alertHandler:  alertHandler,
		healthHandler: healthHandler,
		port:          port,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health/database", s.healthHandler.CheckDatabase)

	// Prometheus metrics
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Alert routes
	api := s.router.Group("/api/v1/alerts")
	{
		api.GET("", s.alertHandler.List)
		api.GET("/:id", s.alertHandler.GetByID)
		api.PUT("/:id/acknowledge", s.alertHandler.Acknowledge)
		api.PUT("/:id/resolve", s.alertHandler.Resolve)
		api.PUT("/:id/escalate", s.alertHandler.Escalate)
		api.PUT("/:id/suppress", s.alertHandler.Suppress)
		api.PUT("/:id/close", s.alertHandler.Close)
	}

	s.router.GET("/api/v1/groups", s.alertHandler.Groups)
	s.router.GET("/api/v1/statistics", s.alertHandler.Statistics)
}

func (s *Server) Start() error {
	s.SetupRoutes()
	fmt.Printf("Starting server on port %d...\n", s.port)
	return s.router.Run(":" + strconv.Itoa(s.port))
}
