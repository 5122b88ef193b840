package t2048

import "math/rand"

// scriptedRand replays fixed values, reduced modulo n.
type scriptedRand struct {
	vals []int
	pos  int
}

func script(vals ...int) *scriptedRand {
	return &scriptedRand{vals: vals}
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.pos%len(r.vals)]
	r.pos++
	return v % n
}

// randomBoard fills roughly half the cells with small powers of two.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	for y := range BoardSize {
		for x := range BoardSize {
			if rng.Intn(2) == 0 {
				continue
			}
			b[y][x] = 2 << rng.Intn(4)
		}
	}
	return b
}

func rowBoard(row [BoardSize]int) Board {
	return Board{row}
}

func boardSum(b Board) int {
	sum := 0
	for y := range BoardSize {
		for x := range BoardSize {
			sum += b[y][x]
		}
	}
	return sum
}
