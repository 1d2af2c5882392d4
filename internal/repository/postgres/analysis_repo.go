package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iamasit07/connect4-analyzer/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type AnalysisRepo struct {
	DB *sqlx.DB
}

func NewAnalysisRepo(db *sqlx.DB) *AnalysisRepo {
	return &AnalysisRepo{DB: db}
}

// analysisRow mirrors the analysis table
type analysisRow struct {
	ID          string         `db:"id"`
	Kind        string         `db:"kind"`
	BoardState  []byte         `db:"board_state"`
	Rows        int            `db:"rows_count"`
	Cols        int            `db:"cols_count"`
	Player      sql.NullInt64  `db:"player"`
	Column      sql.NullInt64  `db:"chosen_column"`
	Tier        sql.NullString `db:"tier"`
	Winner      sql.NullBool   `db:"winner"`
	CleanupMask pq.BoolArray   `db:"cleanup_mask"`
	CreatedAt   time.Time      `db:"created_at"`
}

func toRow(a *domain.Analysis) (*analysisRow, error) {
	board, err := json.Marshal(a.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board state: %w", err)
	}

	row := &analysisRow{
		ID:          a.ID,
		Kind:        string(a.Kind),
		BoardState:  board,
		Rows:        a.Rows,
		Cols:        a.Cols,
		CleanupMask: pq.BoolArray(a.CleanupMask),
		CreatedAt:   a.CreatedAt,
	}
	if a.Player != 0 {
		row.Player = sql.NullInt64{Int64: int64(a.Player), Valid: true}
	}
	if a.Column != nil {
		row.Column = sql.NullInt64{Int64: int64(*a.Column), Valid: true}
	}
	if a.Tier != "" {
		row.Tier = sql.NullString{String: a.Tier, Valid: true}
	}
	if a.Winner != nil {
		row.Winner = sql.NullBool{Bool: *a.Winner, Valid: true}
	}
	return row, nil
}

func (row *analysisRow) toDomain() (domain.Analysis, error) {
	a := domain.Analysis{
		ID:        row.ID,
		Kind:      domain.AnalysisKind(row.Kind),
		Rows:      row.Rows,
		Cols:      row.Cols,
		Tier:      row.Tier.String,
		CreatedAt: row.CreatedAt,
	}
	if err := json.Unmarshal(row.BoardState, &a.Board); err != nil {
		return a, fmt.Errorf("failed to unmarshal board state of %s: %w", row.ID, err)
	}
	if row.Player.Valid {
		a.Player = int(row.Player.Int64)
	}
	if row.Column.Valid {
		col := int(row.Column.Int64)
		a.Column = &col
	}
	if row.Winner.Valid {
		won := row.Winner.Bool
		a.Winner = &won
	}
	if len(row.CleanupMask) > 0 {
		a.CleanupMask = []bool(row.CleanupMask)
	}
	return a, nil
}

// SaveAnalysis inserts one analysis record
func (r *AnalysisRepo) SaveAnalysis(ctx context.Context, a *domain.Analysis) error {
	row, err := toRow(a)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO analysis (id, kind, board_state, rows_count, cols_count, player, chosen_column, tier, winner, cleanup_mask, created_at)
	VALUES (:id, :kind, :board_state, :rows_count, :cols_count, :player, :chosen_column, :tier, :winner, :cleanup_mask, :created_at)
	ON CONFLICT (id) DO NOTHING;
	`
	if _, err := r.DB.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// RecentAnalyses returns the newest analyses first
func (r *AnalysisRepo) RecentAnalyses(ctx context.Context, limit int) ([]domain.Analysis, error) {
	query := `
	SELECT id, kind, board_state, rows_count, cols_count, player, chosen_column, tier, winner, cleanup_mask, created_at
	FROM analysis
	ORDER BY created_at DESC
	LIMIT $1;
	`

	var rows []analysisRow
	if err := r.DB.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}

	history := make([]domain.Analysis, 0, len(rows))
	for i := range rows {
		a, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		history = append(history, a)
	}
	return history, nil
}

// DeleteOlderThan removes analyses older than the given number of days
func (r *AnalysisRepo) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	query := `DELETE FROM analysis WHERE created_at < NOW() - make_interval(days => $1);`

	result, err := r.DB.ExecContext(ctx, query, days)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old analyses: %w", err)
	}
	return result.RowsAffected()
}
