package analysis

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/iamasit07/connect4-analyzer/internal/domain"
	"github.com/iamasit07/connect4-analyzer/internal/service/bot"
	"github.com/iamasit07/connect4-analyzer/pkg/uid"
)

const (
	winnerKeyPrefix = "winner:"
	recordTimeout   = 5 * time.Second

	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

const ErrHistoryUnavailable domain.Error = "analysis history is not configured"

type AnalysisRepository interface {
	SaveAnalysis(ctx context.Context, a *domain.Analysis) error
	RecentAnalyses(ctx context.Context, limit int) ([]domain.Analysis, error)
}

type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	PublishAnalysis(ctx context.Context, a *domain.Analysis) error
}

type Broadcaster interface {
	Broadcast(a *domain.Analysis)
}

// Service is the entry point for board analysis (facade over the engine).
// Every collaborator except the selector is optional and may be nil.
type Service struct {
	selector *bot.Selector
	repo     AnalysisRepository
	cache    CacheRepository
	events   EventPublisher
	watchers Broadcaster
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(selector *bot.Selector, repo AnalysisRepository, cache CacheRepository, events EventPublisher, watchers Broadcaster, cacheTTL time.Duration) *Service {
	if selector == nil {
		selector = bot.NewSelector(nil)
	}
	return &Service{
		selector: selector,
		repo:     repo,
		cache:    cache,
		events:   events,
		watchers: watchers,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// CheckWinner reports whether the grid holds a four-in-a-row for either player.
func (s *Service) CheckWinner(ctx context.Context, grid domain.Grid) (bool, error) {
	if err := grid.Validate(); err != nil {
		return false, err
	}

	key := winnerKeyPrefix + grid.Key()
	won, cached := s.cachedWinner(ctx, key)
	if !cached {
		won = domain.HasFourInARow(grid)
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, strconv.FormatBool(won), s.cacheTTL); err != nil {
				log.Printf("[ANALYSIS] Failed to cache winner for %s: %v", key, err)
			}
		}
	}

	s.record(ctx, &domain.Analysis{
		Kind:   domain.KindWinner,
		Board:  grid.Ints(),
		Rows:   grid.Rows(),
		Cols:   grid.Cols(),
		Winner: &won,
	})
	return won, nil
}

func (s *Service) cachedWinner(ctx context.Context, key string) (bool, bool) {
	if s.cache == nil {
		return false, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, false
	}
	won, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[ANALYSIS] Dropping unreadable cache entry %s=%q", key, raw)
		_ = s.cache.Del(ctx, key)
		return false, false
	}
	return won, true
}

// ChooseMove selects the next column for self against the other player.
// A full board yields a Move with Column == bot.NoMove and no error.
func (s *Service) ChooseMove(ctx context.Context, grid domain.Grid, self domain.Cell) (bot.Move, error) {
	if !self.IsPlayer() {
		return bot.Move{Column: bot.NoMove, Tier: bot.TierNone}, domain.ErrInvalidPlayer
	}

	move, err := s.selector.ChooseMove(grid, self, self.Opponent())
	if err != nil {
		return move, err
	}

	a := &domain.Analysis{
		Kind:   domain.KindMove,
		Board:  grid.Ints(),
		Rows:   grid.Rows(),
		Cols:   grid.Cols(),
		Player: int(self),
		Tier:   string(move.Tier),
	}
	if move.Available() {
		col := move.Column
		a.Column = &col
	}
	s.record(ctx, a)

	log.Printf("[ANALYSIS] Player %d -> column %d (%s)", self, move.Column, move.Tier)
	return move, nil
}

// Cleanup returns the per-cell disc mask the cleanup robot consumes.
func (s *Service) Cleanup(ctx context.Context, grid domain.Grid) ([]bool, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	mask := domain.CleanupMask(grid)

	s.record(ctx, &domain.Analysis{
		Kind:        domain.KindCleanup,
		Board:       grid.Ints(),
		Rows:        grid.Rows(),
		Cols:        grid.Cols(),
		CleanupMask: mask,
	})
	return mask, nil
}

// History returns the most recent analyses, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]domain.Analysis, error) {
	if s.repo == nil {
		return nil, ErrHistoryUnavailable
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.RecentAnalyses(ctx, limit)
}

// record stores, publishes and broadcasts an analysis. Failures are logged
// and never reach the caller.
func (s *Service) record(ctx context.Context, a *domain.Analysis) {
	a.ID = uid.NewAnalysisID()
	a.CreatedAt = s.now().UTC()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if s.repo != nil {
		if err := s.repo.SaveAnalysis(ctx, a); err != nil {
			log.Printf("[ANALYSIS] Failed to save analysis %s: %v", a.ID, err)
		}
	}
	if s.events != nil {
		if err := s.events.PublishAnalysis(ctx, a); err != nil {
			log.Printf("[ANALYSIS] Failed to publish analysis %s: %v", a.ID, err)
		}
	}
	if s.watchers != nil {
		s.watchers.Broadcast(a)
	}
}
