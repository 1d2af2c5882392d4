package bot

// winNow takes the first column that wins on the spot.
type winNow struct{}

func (winNow) Pick(ws *workspace) (int, Tier, bool) {
	for col := 0; col < ws.cols(); col++ {
		if ws.wins(col, ws.self) {
			return col, TierWin, true
		}
	}
	return NoMove, TierWin, false
}

// blockOpponent occupies the first column the opponent would win with.
type blockOpponent struct{}

func (blockOpponent) Pick(ws *workspace) (int, Tier, bool) {
	for col := 0; col < ws.cols(); col++ {
		if ws.wins(col, ws.opponent) {
			return col, TierBlock, true
		}
	}
	return NoMove, TierBlock, false
}

// doubleThreat looks for a move after which self has at least two winning
// follow-ups. The follow-up scan includes the column just played.
type doubleThreat struct{}

func (doubleThreat) Pick(ws *workspace) (int, Tier, bool) {
	for col := 0; col < ws.cols(); col++ {
		row, ok := ws.place(col, ws.self)
		if !ok {
			continue
		}

		opportunities := 0
		for next := 0; next < ws.cols(); next++ {
			if ws.wins(next, ws.self) {
				opportunities++
			}
		}
		ws.remove(row, col)

		if opportunities >= 2 {
			return col, TierDoubleThreat, true
		}
	}
	return NoMove, TierDoubleThreat, false
}

// safeMove keeps the columns that do not hand the opponent an immediate win
// and lets the chooser break the tie, center band first.
type safeMove struct {
	chooser Chooser
}

func (s safeMove) Pick(ws *workspace) (int, Tier, bool) {
	safe := safeColumns(ws)
	if len(safe) == 0 {
		return NoMove, TierSafe, false
	}

	lo, hi := centerBand(ws.cols())
	var center []int
	for _, col := range safe {
		if col >= lo && col <= hi {
			center = append(center, col)
		}
	}
	if len(center) > 0 {
		return s.chooser.Choose(center), TierSafeCenter, true
	}
	return s.chooser.Choose(safe), TierSafe, true
}

// safeColumns returns, in ascending order, the playable columns after
// which the opponent has no immediate win.
func safeColumns(ws *workspace) []int {
	var safe []int
	for col := 0; col < ws.cols(); col++ {
		row, ok := ws.place(col, ws.self)
		if !ok {
			continue
		}

		givesOpponentWin := false
		for reply := 0; reply < ws.cols(); reply++ {
			if ws.wins(reply, ws.opponent) {
				givesOpponentWin = true
				break
			}
		}
		ws.remove(row, col)

		if !givesOpponentWin {
			safe = append(safe, col)
		}
	}
	return safe
}

// fallback plays the first open column in center-out order.
type fallback struct{}

func (fallback) Pick(ws *workspace) (int, Tier, bool) {
	for _, col := range preferenceOrder(ws.cols()) {
		if ws.grid.HasRoom(col) {
			return col, TierFallback, true
		}
	}
	return NoMove, TierNone, false
}
