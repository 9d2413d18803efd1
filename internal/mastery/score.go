package mastery

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/feynman/internal/feedback"
)

const (
	// MaxLengthPoints caps the answer-length component.
	MaxLengthPoints = 60
	// CharsPerPoint is how many answer characters earn one length point.
	CharsPerPoint = 6
	// MaxCriteriaPoints is awarded when every criterion cue is found.
	MaxCriteriaPoints = 40
	// cueWords is how many leading words of a criterion form its cue.
	cueWords = 3
)

// ScoredCheckpoint is the score for one checkpoint of a model.
type ScoredCheckpoint struct {
	Index int   `json:"index"`
	Level Level `json:"level"`
	Score int   `json:"score"`
}

// Report is the outcome of scoring a whole model.
type Report struct {
	PerCheckpoint []ScoredCheckpoint `json:"per_checkpoint"`
	OverallScore  int                `json:"overall_score"`
	OverallLevel  Level              `json:"overall_level"`
}

// Score computes per-checkpoint and overall understanding for m.
// An empty model scores 0 overall.
func Score(m feedback.Model) Report {
	r := Report{PerCheckpoint: make([]ScoredCheckpoint, 0, len(m.Checkpoints))}

	total := 0
	for i, cp := range m.Checkpoints {
		s := CheckpointScore(cp)
		total += s
		r.PerCheckpoint = append(r.PerCheckpoint, ScoredCheckpoint{
			Index: i,
			Level: ToLevel(s),
			Score: s,
		})
	}

	if n := len(r.PerCheckpoint); n > 0 {
		r.OverallScore = roundHalfUp(float64(total) / float64(n))
	}
	r.OverallLevel = ToLevel(r.OverallScore)
	return r
}

// CheckpointScore scores a single checkpoint's answer against its criteria.
func CheckpointScore(cp feedback.CheckpointCriteria) int {
	answer := strings.TrimSpace(cp.Answer)
	base := min(MaxLengthPoints, utf8.RuneCountInString(answer)/CharsPerPoint)

	lowered := strings.ToLower(answer)
	matches := 0
	for _, crit := range cp.Criteria {
		c := strings.ToLower(crit)
		if c == "" {
			continue
		}
		if strings.Contains(lowered, cuePhrase(c)) {
			matches++
		}
	}

	criteriaTotal := max(1, len(cp.Criteria))
	criteriaScore := roundHalfUp(float64(matches) / float64(criteriaTotal) * MaxCriteriaPoints)

	return clamp(base+criteriaScore, 0, 100)
}

// cuePhrase returns the first few single-space separated words of crit.
func cuePhrase(crit string) string {
	words := strings.Split(crit, " ")
	if len(words) > cueWords {
		words = words[:cueWords]
	}
	return strings.Join(words, " ")
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
