package t2048

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpawnTileSingleEmptyCell(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 0, 2, 4},
		{8, 16, 32, 64},
	}

	for seed := range int64(20) {
		rng := rand.New(rand.NewSource(seed))
		got, pos, ok := SpawnTile(board, rng, SpawnWeighted)
		if !ok {
			t.Fatal("SpawnTile should succeed with one empty cell")
		}
		if pos != (Pos{X: 1, Y: 2}) {
			t.Fatalf("SpawnTile filled %v, want (1, 2)", pos)
		}
		if v := got[2][1]; v != 2 && v != 4 {
			t.Fatalf("spawned value = %d, want 2 or 4", v)
		}

		want := board
		want[2][1] = got[2][1]
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("SpawnTile changed other cells (-want +got):\n%s", diff)
		}
	}
}

func TestSpawnTileFullBoard(t *testing.T) {
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	got, _, ok := SpawnTile(board, script(3), SpawnWeighted)
	if ok {
		t.Error("SpawnTile on a full board should report no spawn")
	}
	if got != board {
		t.Error("SpawnTile on a full board should not change it")
	}
}

func TestSpawnTileDoesNotModifyInput(t *testing.T) {
	board := NewBoard()
	_, _, _ = SpawnTile(board, script(0, 1), SpawnWeighted)
	if board != NewBoard() {
		t.Error("SpawnTile modified its input")
	}
}

func TestSpawnPolicyValues(t *testing.T) {
	tests := []struct {
		name   string
		policy SpawnPolicy
		rolls  []int // cell pick, then value roll
		pos    Pos
		want   int
	}{
		{"weighted two", SpawnWeighted, []int{5, 3}, Pos{X: 1, Y: 1}, 2},
		{"weighted four", SpawnWeighted, []int{0, 0}, Pos{X: 0, Y: 0}, 4},
		{"weighted nine is two", SpawnWeighted, []int{15, 9}, Pos{X: 3, Y: 3}, 2},
		{"uniform two", SpawnUniform, []int{2, 0}, Pos{X: 2, Y: 0}, 2},
		{"uniform four", SpawnUniform, []int{2, 1}, Pos{X: 2, Y: 0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pos, ok := SpawnTile(NewBoard(), script(tt.rolls...), tt.policy)
			if !ok {
				t.Fatal("SpawnTile should succeed on an empty board")
			}
			if pos != tt.pos {
				t.Errorf("pos = %v, want %v", pos, tt.pos)
			}
			if got[pos.Y][pos.X] != tt.want {
				t.Errorf("value = %d, want %d", got[pos.Y][pos.X], tt.want)
			}
			if TileCount(got) != 1 {
				t.Errorf("TileCount = %d, want 1", TileCount(got))
			}
		})
	}
}

func TestSpawnWeightedDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))
	fours := 0
	const n = 10000
	for range n {
		b, pos, _ := SpawnTile(NewBoard(), rng, SpawnWeighted)
		if b[pos.Y][pos.X] == 4 {
			fours++
		}
	}
	ratio := float64(fours) / n
	if ratio < 0.07 || ratio > 0.13 {
		t.Errorf("weighted policy spawned 4 with ratio %.3f, want about 0.10", ratio)
	}
}

func TestParseSpawnPolicy(t *testing.T) {
	tests := []struct {
		name    string
		want    SpawnPolicy
		wantErr bool
	}{
		{"", SpawnWeighted, false},
		{"weighted", SpawnWeighted, false},
		{"uniform", SpawnUniform, false},
		{"random", SpawnWeighted, true},
	}

	for _, tt := range tests {
		got, err := ParseSpawnPolicy(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSpawnPolicy(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSpawnPolicy(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if SpawnUniform.String() != "uniform" || SpawnWeighted.String() != "weighted" {
		t.Error("policy names should round-trip through String")
	}
}

func TestInitializeBoard(t *testing.T) {
	for seed := range int64(50) {
		b := InitializeBoard(rand.New(rand.NewSource(seed)), SpawnWeighted)
		if TileCount(b) != 2 {
			t.Fatalf("seed %d: TileCount = %d, want 2", seed, TileCount(b))
		}
		if CheckGameOver(b) || CheckWin(b) {
			t.Fatalf("seed %d: initial board is terminal", seed)
		}
	}
}
