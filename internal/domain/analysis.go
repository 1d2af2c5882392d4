package domain

import "time"

// AnalysisKind tells which endpoint produced an analysis record.
type AnalysisKind string

const (
	KindMove    AnalysisKind = "move"
	KindWinner  AnalysisKind = "winner"
	KindCleanup AnalysisKind = "cleanup"
)

// Analysis is one answered request, as stored in the history and sent to
// spectators and the analytics stream.
type Analysis struct {
	ID          string       `json:"id"`
	Kind        AnalysisKind `json:"kind"`
	Board       [][]int      `json:"board"`
	Rows        int          `json:"rows"`
	Cols        int          `json:"cols"`
	Player      int          `json:"player,omitempty"`
	Column      *int         `json:"column,omitempty"`
	Tier        string       `json:"tier,omitempty"`
	Winner      *bool        `json:"winner,omitempty"`
	CleanupMask []bool       `json:"cleanup_mask,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
