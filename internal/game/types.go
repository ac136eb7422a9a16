// internal/game/types.go
//
// Core type definitions for the guess-evaluation engine.
// Defines:
//   - Tier: discrete proximity bucket for player feedback.
//   - Result: the structured outcome of evaluating one guess.
//   - Summary: end-of-game reveal of the daily target.

package game

import (
	"github.com/citidle/go-server/internal/cities"
	"github.com/citidle/go-server/internal/geo"
)

// Tier is the proximity bucket for a scored guess.
// Buckets (miles from target):
//   - "exact":      the guess is the target city.
//   - "very-close": under 100.
//   - "warm":       100 up to (not including) 500.
//   - "far":        500 up to (not including) 1000.
//   - "very-far":   1000 and beyond.
type Tier string

const (
	TierExact     Tier = "exact"
	TierVeryClose Tier = "very-close"
	TierWarm      Tier = "warm"
	TierFar       Tier = "far"
	TierVeryFar   Tier = "very-far"
)

// Result is the outcome of evaluating a single guess. Created per guess,
// never mutated. Exactly one of three shapes holds:
//   - unresolved:  City nil, Candidates empty — guess matched nothing
//   - ambiguous:   Candidates non-empty — caller re-prompts with a state
//   - scored:      City set, with distance/direction/tier filled in
type Result struct {
	City          *cities.City   // matched city, nil if unresolved/ambiguous
	Candidates    []*cities.City // ambiguity candidates
	DistanceMiles float64        // miles to the target, 0 when correct
	Direction     geo.Direction  // from guessed city toward the target
	Tier          Tier           // proximity bucket, "" if unscored
	Correct       bool           // guess equals today's target
}

// Resolved reports whether the guess matched exactly one city.
func (r *Result) Resolved() bool { return r.City != nil }

// Ambiguous reports whether the guess needs a state qualifier.
func (r *Result) Ambiguous() bool { return len(r.Candidates) > 0 }

// Summary is the end-of-game reveal of the daily target. Only handed out
// by the caller after a win or an explicit give-up.
type Summary struct {
	Name  string  `json:"name"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}
