package checkpoints

// TitlePrefix starts every concept-derived checkpoint title.
const TitlePrefix = "Understanding "

const (
	// MinCheckpoints is the floor that generic checkpoints top up to.
	MinCheckpoints = 3

	// MaxConceptCheckpoints caps checkpoints derived from concepts.
	MaxConceptCheckpoints = 5
)

// Checkpoint is one independently assessable milestone derived from notes.
type Checkpoint struct {
	ID                   int    `json:"id"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Completed            bool   `json:"completed"`
	ExplanationRequested bool   `json:"explanation_requested,omitempty"`
}

type genericCheckpoint struct {
	title       string
	description string
}

// genericCheckpoints fill the list when notes yield too few concepts.
var genericCheckpoints = []genericCheckpoint{
	{
		title:       "Grasp the Main Concept",
		description: "Can you explain the central idea in your own words without looking at your notes?",
	},
	{
		title:       "Identify Key Relationships",
		description: "How do the different parts of this topic connect to each other?",
	},
	{
		title:       "Apply the Knowledge",
		description: "Can you think of a real-world example or application of this concept?",
	},
}

// descriptionTemplates are the prompts a concept checkpoint may carry.
// Each takes the concept term once.
var descriptionTemplates = []string{
	"Can you explain what %s means without referring to your notes?",
	"How would you describe %s to someone who has never heard of it?",
	"What are the key characteristics or features of %s?",
	"Can you provide an example that illustrates %s?",
	"How does %s relate to the other concepts in your notes?",
}

// DescriptionCount returns the size of the description template pool.
func DescriptionCount() int {
	return len(descriptionTemplates)
}
