package models

// Round is one of the three ordered interview phases.
type Round string

const (
	RoundDSA         Round = "dsa"
	RoundTheoretical Round = "theoretical"
	RoundHR          Round = "hr"
)

// Next returns the round that follows, or false when the round is terminal.
func (r Round) Next() (Round, bool) {
	switch r {
	case RoundDSA:
		return RoundTheoretical, true
	case RoundTheoretical:
		return RoundHR, true
	default:
		return r, false
	}
}

// IsCoding reports whether the round expects code submissions.
func (r Round) IsCoding() bool {
	return r == RoundDSA
}

// Difficulty is the ordered question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// StepUp moves one difficulty level up, capped at hard.
func (d Difficulty) StepUp() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return d
	}
}

// StepDown moves one difficulty level down, capped at easy.
func (d Difficulty) StepDown() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return d
	}
}

// Order returns the difficulty rank (easy=0, medium=1, hard=2).
func (d Difficulty) Order() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	default:
		return 2
	}
}
