package game

import (
	"math/rand"

	"github.com/ytget/schulte-grid/internal/model"
)

// Shuffle returns the numbers 1..CellCount in uniformly random order
func Shuffle(rng *rand.Rand) []int {
	numbers := make([]int, model.CellCount)
	for i := range numbers {
		numbers[i] = i + 1
	}
	shuffleInPlace(numbers, rng)
	return numbers
}

// shuffleInPlace is a Fisher-Yates shuffle
func shuffleInPlace(values []int, rng *rand.Rand) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
