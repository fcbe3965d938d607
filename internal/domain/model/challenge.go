package model

import (
	"fmt"
	"time"
)

// Difficulty is the provider's difficulty level. Its string value doubles as
// the name of the forum tag a thread is classified with.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty maps a provider value onto a known Difficulty.
func ParseDifficulty(val string) (Difficulty, error) {
	switch d := Difficulty(val); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", val)
	}
}

func (d Difficulty) String() string {
	return string(d)
}

// ChallengeMetadata describes today's daily coding challenge.
type ChallengeMetadata struct {
	Date       time.Time
	Link       string // relative path, e.g. /problems/two-sum/
	Difficulty Difficulty
	ID         int
	Title      string
	TitleSlug  string
}

// ChallengeContent is the raw HTML body of a question.
type ChallengeContent string

// ConvertedBody is the markdown message posted as the opening message of a thread.
type ConvertedBody string
