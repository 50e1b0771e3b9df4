// Package insight is the client boundary for the external text-generation
// service that produces financial summaries, saving tips, and category
// suggestions. Failures never cross this boundary raw: every operation
// resolves to a documented fallback instead of corrupting caller state.
package insight

import (
	"context"
	"errors"

	"fintrack/internal/core"
)

// Insight is the natural-language analysis of a transaction sample.
type Insight struct {
	Summary string   `json:"summary"`
	Tips    []string `json:"tips"`
}

// Gateway is the external-service boundary. Both operations work on
// read-only snapshots passed by value and must never block the transaction
// store or the aggregation pipeline.
type Gateway interface {
	// Analyze summarizes spending habits over a capped sample of the given
	// transactions and returns actionable saving tips.
	Analyze(ctx context.Context, ts []core.Transaction) (Insight, error)

	// SuggestCategory proposes a category name for a draft transaction. It
	// falls back to core.DefaultCategory instead of failing.
	SuggestCategory(ctx context.Context, title string, amount core.Money) (string, error)
}

// ErrUnavailable is returned by Analyze when the gateway has no credentials
// or the service cannot be reached.
var ErrUnavailable = errors.New("insight gateway unavailable")

// Fallback texts substituted when the service responds but the payload is
// unusable.
const (
	summaryEmptyFallback = "Unable to analyze."
	summaryParseFallback = "Error parsing insights."
)

// Unavailable is the insight substituted when the gateway cannot be reached
// at all. Callers render it instead of propagating the error.
func Unavailable() Insight {
	return Insight{Summary: summaryEmptyFallback, Tips: []string{}}
}

// Disabled is the gateway used when no API key is configured. Analyze
// surfaces an error state; SuggestCategory degrades to the default category.
type Disabled struct{}

func (Disabled) Analyze(ctx context.Context, ts []core.Transaction) (Insight, error) {
	return Insight{}, ErrUnavailable
}

func (Disabled) SuggestCategory(ctx context.Context, title string, amount core.Money) (string, error) {
	return core.DefaultCategory, nil
}
