package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/iamasit07/connect4-analyzer/internal/domain"
)

const ErrCaptureFailed domain.Error = "board capture failed"

// Client asks the camera host to photograph the board and classify it.
type Client struct {
	URL  string
	HTTP *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: timeout},
	}
}

// CaptureBoard triggers a capture and returns the detected grid.
func (c *Client) CaptureBoard(ctx context.Context) (domain.Grid, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	log.Printf("[CAPTURE] Requesting board from %s", c.URL)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: camera host answered %d: %s", ErrCaptureFailed, resp.StatusCode, body)
	}

	var raw [][]int
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: undecodable board: %v", ErrCaptureFailed, err)
	}

	grid, err := domain.ParseGrid(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	log.Printf("[CAPTURE] Board received (%dx%d)", grid.Rows(), grid.Cols())
	return grid, nil
}
