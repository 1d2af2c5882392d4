package bot

import (
	"github.com/iamasit07/connect4-analyzer/internal/domain"
)

// NoMove is the column reported when the board has no room left.
const NoMove = -1

// Tier names the rung of the decision ladder that produced a move.
type Tier string

const (
	TierWin          Tier = "win"
	TierBlock        Tier = "block"
	TierDoubleThreat Tier = "double_threat"
	TierSafeCenter   Tier = "safe_center"
	TierSafe         Tier = "safe"
	TierFallback     Tier = "fallback"
	TierNone         Tier = "none"
)

// Move is the outcome of a selection. Column is NoMove when the board is full.
type Move struct {
	Column int  `json:"column"`
	Tier   Tier `json:"tier"`
}

func (m Move) Available() bool {
	return m.Column != NoMove
}

// Strategy is one rung of the ladder. Pick returns ok=false when it has no
// candidate, handing over to the next strategy.
type Strategy interface {
	Pick(ws *workspace) (column int, tier Tier, ok bool)
}

// Selector runs the strategies in order and returns the first answer.
type Selector struct {
	strategies []Strategy
}

// NewSelector builds the standard ladder: win, block, double threat,
// safe move with center preference, fallback.
func NewSelector(chooser Chooser) *Selector {
	if chooser == nil {
		chooser = NewRandomChooser(0)
	}
	return &Selector{
		strategies: []Strategy{
			winNow{},
			blockOpponent{},
			doubleThreat{},
			safeMove{chooser: chooser},
			fallback{},
		},
	}
}

// newSelector builds a selector from an explicit ladder.
func newSelector(strategies ...Strategy) *Selector {
	return &Selector{strategies: strategies}
}

// ChooseMove picks a column for self. The caller's grid is never modified;
// all simulation happens on a private copy.
func (s *Selector) ChooseMove(grid domain.Grid, self, opponent domain.Cell) (Move, error) {
	if err := grid.Validate(); err != nil {
		return Move{Column: NoMove, Tier: TierNone}, err
	}
	if !self.IsPlayer() || !opponent.IsPlayer() || self == opponent {
		return Move{Column: NoMove, Tier: TierNone}, domain.ErrInvalidPlayer
	}

	if grid.IsFull() {
		return Move{Column: NoMove, Tier: TierNone}, nil
	}

	ws := newWorkspace(grid, self, opponent)
	for _, strategy := range s.strategies {
		if col, tier, ok := strategy.Pick(ws); ok {
			return Move{Column: col, Tier: tier}, nil
		}
	}
	return Move{Column: NoMove, Tier: TierNone}, nil
}

// workspace is the scratch board for one ChooseMove call. Simulated discs
// are applied with place and taken back with remove.
type workspace struct {
	grid     domain.Grid
	self     domain.Cell
	opponent domain.Cell
}

func newWorkspace(grid domain.Grid, self, opponent domain.Cell) *workspace {
	return &workspace{grid: grid.Clone(), self: self, opponent: opponent}
}

func (ws *workspace) cols() int {
	return ws.grid.Cols()
}

// place drops a disc into column and returns its row; ok is false when the
// column is full.
func (ws *workspace) place(column int, player domain.Cell) (int, bool) {
	row, err := ws.grid.DropDisc(column, player)
	if err != nil {
		return -1, false
	}
	return row, true
}

func (ws *workspace) remove(row, column int) {
	ws.grid[row][column] = domain.Empty
}

// wins reports whether dropping player's disc into column completes an
// alignment. The board is left as it was.
func (ws *workspace) wins(column int, player domain.Cell) bool {
	row, ok := ws.place(column, player)
	if !ok {
		return false
	}
	won := domain.HasFourInARow(ws.grid)
	ws.remove(row, column)
	return won
}

// centerBand returns the three center columns clipped to the board.
func centerBand(cols int) (lo, hi int) {
	center := cols / 2
	lo, hi = center-1, center+1
	if lo < 0 {
		lo = 0
	}
	if hi > cols-1 {
		hi = cols - 1
	}
	return lo, hi
}

// preferenceOrder lists columns center first, then alternating outward:
// for 7 columns 3,2,4,1,5,0,6.
func preferenceOrder(cols int) []int {
	if cols <= 0 {
		return nil
	}
	center := cols / 2
	order := []int{center}
	for d := 1; len(order) < cols; d++ {
		if c := center - d; c >= 0 {
			order = append(order, c)
		}
		if c := center + d; c < cols {
			order = append(order, c)
		}
	}
	return order
}
