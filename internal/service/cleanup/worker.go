package cleanup

import (
	"context"
	"log"
	"sync"
	"time"
)

type AnalysisPruner interface {
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

// Worker periodically removes old analyses from the history.
type Worker struct {
	Repo          AnalysisPruner
	RetentionDays int
	Interval      time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

func NewWorker(repo AnalysisPruner, retentionDays int) *Worker {
	return &Worker{
		Repo:          repo,
		RetentionDays: retentionDays,
		Interval:      1 * time.Hour,
		stop:          make(chan struct{}),
	}
}

// Start runs one cleanup right away, then one per Interval until Stop.
func (w *Worker) Start() {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		w.runCleanup()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-w.stop:
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

func (w *Worker) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deletedCount, err := w.Repo.DeleteOlderThan(ctx, w.RetentionDays)
	if err != nil {
		log.Printf("[CLEANUP] Error pruning analysis history: %v", err)
		return
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d analyses older than %d days", deletedCount, w.RetentionDays)
	}
}
