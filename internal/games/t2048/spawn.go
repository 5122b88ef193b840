package t2048

import "fmt"

// Rand is the random source used to spawn tiles. *math/rand.Rand satisfies it;
// tests inject scripted sources.
type Rand interface {
	Intn(n int) int
}

// SpawnPolicy decides the value of a newly spawned tile.
type SpawnPolicy int

const (
	// SpawnWeighted spawns 2 with weight 9 and 4 with weight 1.
	SpawnWeighted SpawnPolicy = iota
	// SpawnUniform picks 2 or 4 with equal probability.
	SpawnUniform
)

// String returns the policy name as used in config files.
func (p SpawnPolicy) String() string {
	switch p {
	case SpawnWeighted:
		return "weighted"
	case SpawnUniform:
		return "uniform"
	default:
		return fmt.Sprintf("SpawnPolicy(%d)", int(p))
	}
}

// ParseSpawnPolicy converts a config name into a SpawnPolicy.
// An empty name selects SpawnWeighted.
func ParseSpawnPolicy(name string) (SpawnPolicy, error) {
	switch name {
	case "", "weighted":
		return SpawnWeighted, nil
	case "uniform":
		return SpawnUniform, nil
	default:
		return SpawnWeighted, fmt.Errorf("t2048: unknown spawn policy %q", name)
	}
}

// tileValue draws the value for a new tile.
func (p SpawnPolicy) tileValue(rng Rand) int {
	if p == SpawnUniform {
		if rng.Intn(2) == 1 {
			return 4
		}
		return 2
	}
	if rng.Intn(10) == 0 {
		return 4
	}
	return 2
}

// SpawnTile places a 2 or 4 in an empty cell chosen uniformly at random.
// It returns the new board, the position filled, and false when the board was
// already full (the board is returned unchanged).
func SpawnTile(board Board, rng Rand, policy SpawnPolicy) (Board, Pos, bool) {
	emptyCells := EmptyCells(board)
	if len(emptyCells) == 0 {
		return board, Pos{}, false
	}

	cell := emptyCells[rng.Intn(len(emptyCells))]
	board[cell.Y][cell.X] = policy.tileValue(rng)
	return board, cell, true
}

// InitializeBoard returns an empty board with two spawned tiles.
func InitializeBoard(rng Rand, policy SpawnPolicy) Board {
	board := NewBoard()
	board, _, _ = SpawnTile(board, rng, policy)
	board, _, _ = SpawnTile(board, rng, policy)
	return board
}
