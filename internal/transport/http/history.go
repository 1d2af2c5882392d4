package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-analyzer/internal/service/analysis"
)

type HistoryHandler struct {
	Analysis *analysis.Service
}

func NewHistoryHandler(svc *analysis.Service) *HistoryHandler {
	return &HistoryHandler{Analysis: svc}
}

// GetHistory lists recent analyses, newest first
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	limit := analysis.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	history, err := h.Analysis.History(c.Request.Context(), limit)
	if errors.Is(err, analysis.ErrHistoryUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
