package game

import (
	"math/rand"
	"time"
)

// DiceRoll is the outcome of throwing two six-sided dice.
type DiceRoll struct {
	D1     int
	D2     int
	Sum    int
	Double bool
}

func NewDiceRoll() DiceRoll {
	rand.Seed(time.Now().UnixNano())
	return FixedRoll(rand.Intn(6)+1, rand.Intn(6)+1)
}

// FixedRoll builds a roll from known faces. Used for mocked dice and tests.
func FixedRoll(d1 int, d2 int) DiceRoll {
	return DiceRoll{
		D1:     d1,
		D2:     d2,
		Sum:    d1 + d2,
		Double: d1 == d2,
	}
}
