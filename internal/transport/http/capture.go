package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-analyzer/internal/domain"
)

type BoardCapturer interface {
	CaptureBoard(ctx context.Context) (domain.Grid, error)
}

type CaptureHandler struct {
	Capturer BoardCapturer
}

func NewCaptureHandler(capturer BoardCapturer) *CaptureHandler {
	return &CaptureHandler{Capturer: capturer}
}

// CaptureBoard forwards the capture request to the camera host and returns
// the detected board.
func (h *CaptureHandler) CaptureBoard(c *gin.Context) {
	grid, err := h.Capturer.CaptureBoard(c.Request.Context())
	if err != nil {
		log.Printf("[HTTP] capture_board: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grid.Ints())
}
