package checkpoints

import (
	"fmt"

	"github.com/abhisek/feynman/internal/concepts"
)

// Generator turns notes into an ordered checkpoint list.
type Generator struct {
	picker Picker
}

// NewGenerator creates a Generator. A nil picker means RandomPicker.
func NewGenerator(picker Picker) *Generator {
	if picker == nil {
		picker = RandomPicker{}
	}
	return &Generator{picker: picker}
}

var defaultGenerator = NewGenerator(RandomPicker{})

// Generate synthesizes checkpoints from notes using random descriptions.
func Generate(notes string) []Checkpoint {
	return defaultGenerator.Generate(notes)
}

// Generate synthesizes checkpoints from notes. Concept checkpoints come
// first, in concept order; generic checkpoints are appended only to reach
// MinCheckpoints. IDs start at 1 and have no gaps. Never returns fewer than
// MinCheckpoints entries.
func (g *Generator) Generate(notes string) []Checkpoint {
	found := concepts.Extract(notes)
	if len(found) > MaxConceptCheckpoints {
		found = found[:MaxConceptCheckpoints]
	}

	out := make([]Checkpoint, 0, max(len(found), MinCheckpoints))
	id := 1

	for i, c := range found {
		out = append(out, Checkpoint{
			ID:          id,
			Title:       TitlePrefix + c.Term,
			Description: g.describe(c.Term, i),
		})
		id++
	}

	for _, gc := range genericCheckpoints {
		if len(out) >= MinCheckpoints {
			break
		}
		out = append(out, Checkpoint{
			ID:          id,
			Title:       gc.title,
			Description: gc.description,
		})
		id++
	}

	return out
}

func (g *Generator) describe(term string, index int) string {
	n := len(descriptionTemplates)
	pick := g.picker.Pick(term, index, n)
	if pick < 0 || pick >= n {
		pick = 0
	}
	return fmt.Sprintf(descriptionTemplates[pick], term)
}
