package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-analyzer/internal/domain"
	"github.com/iamasit07/connect4-analyzer/internal/service/analysis"
)

// ErrorHeader carries the reason of a degraded (400) answer; the body keeps
// the neutral value the orchestration engine can continue with.
const ErrorHeader = "X-Error"

type BoardHandler struct {
	Analysis      *analysis.Service
	DefaultPlayer domain.Cell
}

func NewBoardHandler(svc *analysis.Service, defaultPlayer domain.Cell) *BoardHandler {
	if !defaultPlayer.IsPlayer() {
		defaultPlayer = domain.PlayerTwo
	}
	return &BoardHandler{Analysis: svc, DefaultPlayer: defaultPlayer}
}

// Analyze answers with the column the automated player should drop into,
// or null when the board is full.
func (h *BoardHandler) Analyze(c *gin.Context) {
	grid, err := readGrid(c)
	if err != nil {
		degrade(c, "analyze", err, nil)
		return
	}

	player := h.DefaultPlayer
	if raw := c.PostForm("player"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil || !domain.Cell(v).IsPlayer() {
			degrade(c, "analyze", fmt.Errorf("%w: %q", domain.ErrInvalidPlayer, raw), nil)
			return
		}
		player = domain.Cell(v)
	}

	move, err := h.Analysis.ChooseMove(c.Request.Context(), grid, player)
	if err != nil {
		degrade(c, "analyze", err, nil)
		return
	}

	c.Header("X-Move-Tier", string(move.Tier))
	if !move.Available() {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, move.Column)
}

// CheckWinner answers true when any four-in-a-row is on the board.
func (h *BoardHandler) CheckWinner(c *gin.Context) {
	grid, err := readGrid(c)
	if err != nil {
		degrade(c, "check_winner", err, false)
		return
	}

	won, err := h.Analysis.CheckWinner(c.Request.Context(), grid)
	if err != nil {
		degrade(c, "check_winner", err, false)
		return
	}
	c.JSON(http.StatusOK, won)
}

// Cleanup answers with the reversed per-cell occupancy array.
func (h *BoardHandler) Cleanup(c *gin.Context) {
	grid, err := readGrid(c)
	if err != nil {
		degrade(c, "cleanup", err, []bool{})
		return
	}

	mask, err := h.Analysis.Cleanup(c.Request.Context(), grid)
	if err != nil {
		degrade(c, "cleanup", err, []bool{})
		return
	}
	c.JSON(http.StatusOK, mask)
}

// readGrid takes the board from the "value" form field the orchestration
// engine sends, or from a raw JSON body.
func readGrid(c *gin.Context) (domain.Grid, error) {
	payload := c.PostForm("value")
	if payload == "" {
		body, err := c.GetRawData()
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable body: %v", domain.ErrInvalidGrid, err)
		}
		payload = string(body)
	}
	if payload == "" {
		return nil, fmt.Errorf("%w: no 'value' in form data", domain.ErrInvalidGrid)
	}

	var raw [][]int
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: could not parse board data as JSON: %v", domain.ErrInvalidGrid, err)
	}
	return domain.ParseGrid(raw)
}

func degrade(c *gin.Context, endpoint string, err error, neutral any) {
	status := http.StatusBadRequest
	if !errors.Is(err, domain.ErrInvalidGrid) && !errors.Is(err, domain.ErrInvalidPlayer) {
		status = http.StatusInternalServerError
	}
	log.Printf("[HTTP] %s: %v", endpoint, err)
	c.Header(ErrorHeader, err.Error())
	c.JSON(status, neutral)
}
