package service

import (
	"math/rand"
	"time"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

// Analyzer produces communication scores for a message.
// Stub implementation: each dimension is an independent uniform draw,
// a placeholder for a real language model.
type Analyzer struct {
	rng *rand.Rand
}

// NewAnalyzer creates a new Analyzer with its own random source
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Analyze returns tone, empathy, clarity and confidence scores for the text,
// each in [0, 100)
func (a *Analyzer) Analyze(text string) domain.Scores {
	_ = text // the stub ignores the content

	return domain.Scores{
		Tone:       a.rng.Intn(100),
		Empathy:    a.rng.Intn(100),
		Clarity:    a.rng.Intn(100),
		Confidence: a.rng.Intn(100),
	}
}
