package checkpoints

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
)

// Picker chooses which of n description templates a concept gets.
// Implementations must return a value in [0, n).
type Picker interface {
	Pick(term string, index, n int) int
}

// RandomPicker picks uniformly at random, so identical notes can produce
// different descriptions across runs. Safe for concurrent use.
type RandomPicker struct{}

func (RandomPicker) Pick(_ string, _ int, n int) int {
	return rand.IntN(n)
}

// SeededPicker derives the pick from the term and its position, making
// descriptions reproducible for identical notes.
type SeededPicker struct{}

func (SeededPicker) Pick(term string, index, n int) int {
	h := fnv.New32a()
	h.Write([]byte(term))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(index)))
	return int(h.Sum32() % uint32(n))
}

// PickerFor maps a description mode name to a Picker. Unknown modes fall
// back to RandomPicker.
func PickerFor(mode string) Picker {
	if mode == ModeSeeded {
		return SeededPicker{}
	}
	return RandomPicker{}
}

// Description modes accepted by PickerFor.
const (
	ModeRandom = "random"
	ModeSeeded = "seeded"
)
