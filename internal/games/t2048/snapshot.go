package t2048

// Snapshot captures the complete game state for determinism testing and
// debug logging.
type Snapshot struct {
	Status  Status
	Moves   int
	Board   Board
	Tiles   int // Non-empty cells
	MaxTile int
	WinTile int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Status:  g.status,
		Moves:   g.moves,
		Board:   g.board,
		Tiles:   TileCount(g.board),
		MaxTile: MaxTile(g.board),
		WinTile: g.rules.WinTile,
	}
}
