// Package app wires shared HTTP routes for both local and Lambda execution.
package app

import (
	"time"

	"example/vision-api/app/config"
	"example/vision-api/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server owns the per-process state shared by the HTTP handlers: the usage
// ledger and the vision backend client.
type Server struct {
	cfg    *config.Config
	ledger *UsageLedger
	vision *VisionClient
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:    cfg,
		ledger: NewUsageLedger(),
		vision: NewVisionClient(cfg.Vision.APIKey, cfg.Vision.Model, cfg.Vision.MaxTokens),
	}
}

// NewRouter builds the shared HTTP router for both local and Lambda execution.
func (s *Server) NewRouter() (*gin.Engine, error) {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(RequestID())

	router.GET("/", s.Root)
	router.GET("/api/health", s.Health)

	verifier, err := auth.NewVerifierFromEnv()
	if err != nil && !auth.AuthDisabled() {
		return nil, err
	}

	protected := router.Group("/")
	protected.Use(auth.Middleware(verifier, auth.MiddlewareConfig{}))
	protected.POST("/api/analyze", s.Analyze)
	protected.GET("/api/usage", s.Usage)

	return router, nil
}

// RequestID tags each request with a UUID, echoed in the X-Request-ID
// response header and available to handlers for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
