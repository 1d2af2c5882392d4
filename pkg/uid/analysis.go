package uid

import "github.com/google/uuid"

// NewAnalysisID returns a random id for an analysis record
func NewAnalysisID() string {
	return uuid.NewString()
}

// NewConnectionID identifies a spectator websocket
func NewConnectionID() string {
	return uuid.NewString()
}
