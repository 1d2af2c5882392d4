package bot

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iamasit07/connect4-analyzer/internal/domain"
)

func grid(t *testing.T, raw [][]int) domain.Grid {
	t.Helper()
	g, err := domain.ParseGrid(raw)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func emptyRows(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, 7)
	}
	return rows
}

func TestChooseMoveTiers(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]int
		want Move
	}{
		{
			name: "win outranks block",
			raw: [][]int{
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 2, 0, 0, 1, 0},
				{0, 0, 2, 0, 0, 1, 0},
				{0, 0, 2, 0, 0, 1, 0},
			},
			want: Move{Column: 2, Tier: TierWin},
		},
		{
			name: "block opponent",
			raw: [][]int{
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 1, 0, 0},
				{0, 0, 0, 0, 1, 0, 0},
				{2, 2, 0, 0, 1, 0, 0},
			},
			want: Move{Column: 4, Tier: TierBlock},
		},
		{
			name: "double threat",
			raw: [][]int{
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 2, 2, 0, 0, 0},
			},
			want: Move{Column: 1, Tier: TierDoubleThreat},
		},
		{
			// the second threat is the column just played, stacked a row higher
			name: "double threat counts the same column",
			raw: [][]int{
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{0, 2, 2, 0, 0, 0, 0},
				{2, 1, 1, 1, 0, 0, 0},
				{2, 1, 2, 2, 0, 0, 0},
			},
			want: Move{Column: 0, Tier: TierDoubleThreat},
		},
		{
			name: "only safe center column",
			raw: [][]int{
				{0, 0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 0, 0, 0},
				{2, 0, 0, 0, 0, 0, 0},
				{2, 0, 0, 0, 1, 2, 0},
				{1, 1, 0, 1, 2, 1, 2},
				{1, 2, 0, 1, 2, 2, 1},
			},
			want: Move{Column: 4, Tier: TierSafeCenter},
		},
		{
			name: "center band full",
			raw: [][]int{
				{0, 0, 1, 2, 1, 0, 0},
				{0, 0, 1, 2, 1, 0, 0},
				{0, 0, 2, 1, 2, 0, 0},
				{0, 0, 2, 1, 2, 0, 0},
				{0, 0, 1, 2, 1, 0, 0},
				{0, 0, 1, 2, 1, 0, 0},
			},
			want: Move{Column: 0, Tier: TierSafe},
		},
		{
			name: "no safe move falls back",
			raw: [][]int{
				{2, 1, 2, 1, 1, 1, 0},
				{1, 1, 2, 2, 2, 1, 0},
				{2, 2, 1, 2, 2, 2, 1},
				{1, 1, 1, 2, 1, 1, 1},
				{2, 1, 1, 1, 2, 1, 2},
				{2, 1, 2, 1, 2, 1, 2},
			},
			want: Move{Column: 6, Tier: TierFallback},
		},
	}

	selector := NewSelector(FirstChooser{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selector.ChooseMove(grid(t, tt.raw), domain.PlayerTwo, domain.PlayerOne)
			if err != nil {
				t.Fatalf("ChooseMove: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ChooseMove = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChooseMoveFullBoard(t *testing.T) {
	raw := emptyRows(6)
	for r := range raw {
		for c := range raw[r] {
			raw[r][c] = 1 + (r+c)%2
		}
	}
	got, err := NewSelector(nil).ChooseMove(grid(t, raw), domain.PlayerTwo, domain.PlayerOne)
	if err != nil {
		t.Fatalf("ChooseMove: %v", err)
	}
	if got.Available() || got.Column != NoMove || got.Tier != TierNone {
		t.Fatalf("expected no move on a full board, got %+v", got)
	}
}

func TestChooseMoveLeavesInputUntouched(t *testing.T) {
	raw := [][]int{
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 0, 1, 2, 0},
		{1, 1, 0, 1, 2, 1, 2},
		{1, 2, 0, 1, 2, 2, 1},
	}
	g := grid(t, raw)
	before := g.Clone()
	if _, err := NewSelector(NewRandomChooser(42)).ChooseMove(g, domain.PlayerTwo, domain.PlayerOne); err != nil {
		t.Fatalf("ChooseMove: %v", err)
	}
	if !reflect.DeepEqual(g, before) {
		t.Fatalf("input grid was modified:\n got %v\nwant %v", g, before)
	}
}

func TestChooseMovePrefersCenterBand(t *testing.T) {
	empty := grid(t, emptyRows(6))
	for seed := int64(1); seed <= 200; seed++ {
		got, err := NewSelector(NewRandomChooser(seed)).ChooseMove(empty, domain.PlayerTwo, domain.PlayerOne)
		if err != nil {
			t.Fatalf("ChooseMove: %v", err)
		}
		if got.Column < 2 || got.Column > 4 || got.Tier != TierSafeCenter {
			t.Fatalf("seed %d: got %+v, want a safe center column in 2..4", seed, got)
		}
	}
}

func TestChooseMoveRolesAreSymmetric(t *testing.T) {
	// same position as "block opponent" with the colours swapped
	raw := [][]int{
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 2, 0, 0},
		{0, 0, 0, 0, 2, 0, 0},
		{1, 1, 0, 0, 2, 0, 0},
	}
	got, err := NewSelector(FirstChooser{}).ChooseMove(grid(t, raw), domain.PlayerOne, domain.PlayerTwo)
	if err != nil {
		t.Fatalf("ChooseMove: %v", err)
	}
	if got != (Move{Column: 4, Tier: TierBlock}) {
		t.Fatalf("got %+v", got)
	}
}

func TestChooseMoveRejectsBadInput(t *testing.T) {
	s := NewSelector(FirstChooser{})

	ragged := domain.Grid{{domain.Empty, domain.Empty}, {domain.Empty}}
	if _, err := s.ChooseMove(ragged, domain.PlayerTwo, domain.PlayerOne); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}

	board := domain.NewBoard()
	for _, pair := range [][2]domain.Cell{
		{domain.PlayerTwo, domain.PlayerTwo},
		{domain.Empty, domain.PlayerOne},
		{domain.PlayerTwo, domain.Cell(5)},
	} {
		if _, err := s.ChooseMove(board, pair[0], pair[1]); !errors.Is(err, domain.ErrInvalidPlayer) {
			t.Errorf("players %v/%v: expected ErrInvalidPlayer, got %v", pair[0], pair[1], err)
		}
	}
}

func TestChooseMoveDegenerateGrid(t *testing.T) {
	got, err := NewSelector(FirstChooser{}).ChooseMove(grid(t, [][]int{{0, 0, 0}, {0, 0, 0}}), domain.PlayerTwo, domain.PlayerOne)
	if err != nil {
		t.Fatalf("ChooseMove: %v", err)
	}
	// every column of a 3-wide board is in the center band
	if got != (Move{Column: 0, Tier: TierSafeCenter}) {
		t.Fatalf("got %+v", got)
	}

	got, err = NewSelector(FirstChooser{}).ChooseMove(domain.Grid{}, domain.PlayerTwo, domain.PlayerOne)
	if err != nil {
		t.Fatalf("ChooseMove on empty grid: %v", err)
	}
	if got.Available() {
		t.Fatalf("expected no move on a grid without columns, got %+v", got)
	}
}

func TestFallbackOrder(t *testing.T) {
	if got := preferenceOrder(7); !reflect.DeepEqual(got, []int{3, 2, 4, 1, 5, 0, 6}) {
		t.Fatalf("preferenceOrder(7) = %v", got)
	}
	if got := preferenceOrder(4); !reflect.DeepEqual(got, []int{2, 1, 3, 0}) {
		t.Fatalf("preferenceOrder(4) = %v", got)
	}

	raw := emptyRows(6)
	for r := range raw {
		raw[r][3] = 1 + r%2
	}
	s := newSelector(fallback{})
	got, err := s.ChooseMove(grid(t, raw), domain.PlayerTwo, domain.PlayerOne)
	if err != nil {
		t.Fatalf("ChooseMove: %v", err)
	}
	if got != (Move{Column: 2, Tier: TierFallback}) {
		t.Fatalf("fallback with full center = %+v, want column 2", got)
	}
}

func TestCenterBand(t *testing.T) {
	cases := map[int][2]int{7: {2, 4}, 6: {2, 4}, 9: {3, 5}, 4: {1, 3}, 2: {0, 1}, 1: {0, 0}}
	for cols, want := range cases {
		lo, hi := centerBand(cols)
		if lo != want[0] || hi != want[1] {
			t.Errorf("centerBand(%d) = %d..%d, want %d..%d", cols, lo, hi, want[0], want[1])
		}
	}
}

func TestChoosers(t *testing.T) {
	if got := (FirstChooser{}).Choose([]int{5, 1, 3}); got != 5 {
		t.Fatalf("FirstChooser = %d", got)
	}
	if got := (FirstChooser{}).Choose(nil); got != -1 {
		t.Fatalf("FirstChooser(nil) = %d", got)
	}

	a, b := NewRandomChooser(7), NewRandomChooser(7)
	cands := []int{0, 1, 2, 3, 4, 5, 6}
	for i := 0; i < 20; i++ {
		if x, y := a.Choose(cands), b.Choose(cands); x != y {
			t.Fatalf("same seed diverged at draw %d: %d vs %d", i, x, y)
		}
	}
}
