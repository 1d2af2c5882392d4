package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-analyzer/internal/transport/http/middleware"
)

type Routes struct {
	Board          *BoardHandler
	Capture        *CaptureHandler
	History        *HistoryHandler
	Watch          gin.HandlerFunc
	AllowedOrigins []string
	JWTSecret      string
}

// NewRouter wires the public board endpoints (paths kept compatible with the
// orchestration engine) and the protected API.
func NewRouter(rt Routes) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(rt.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	router.POST("/analyze", rt.Board.Analyze)
	router.POST("/check_winner", rt.Board.CheckWinner)
	router.POST("/cleanup", rt.Board.Cleanup)
	if rt.Capture != nil {
		router.POST("/capture_board", rt.Capture.CaptureBoard)
	}
	if rt.Watch != nil {
		router.GET("/ws/watch", rt.Watch)
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(rt.JWTSecret))
	{
		protected.GET("/history", rt.History.GetHistory)
	}

	return router
}
