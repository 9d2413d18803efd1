package mastery

// Level is the coarse understanding band a score falls into.
type Level string

const (
	LevelNovice     Level = "Novice"
	LevelEmerging   Level = "Emerging"
	LevelProficient Level = "Proficient"
	LevelMastered   Level = "Mastered"
)

// Score thresholds, inclusive lower bounds.
const (
	MasteredThreshold   = 85
	ProficientThreshold = 65
	EmergingThreshold   = 40
)

// ToLevel maps a 0-100 score to its level.
func ToLevel(score int) Level {
	switch {
	case score >= MasteredThreshold:
		return LevelMastered
	case score >= ProficientThreshold:
		return LevelProficient
	case score >= EmergingThreshold:
		return LevelEmerging
	default:
		return LevelNovice
	}
}

func (l Level) String() string {
	return string(l)
}
