// internal/game/engine.go
//
// Guess evaluation for the daily city game.
// Responsibilities:
//   - Select the daily target city (deterministic per date, memoized).
//   - Resolve a raw guess through the city resolver.
//   - Score a resolved guess: distance, compass direction, proximity tier,
//     win signal.
//
// The evaluator is a pure function of (date, guess, dataset) apart from a
// read-through memo of date key → target index, which is safe because the
// mapping is deterministic. No-match and ambiguity are result variants,
// not errors; concurrent calls need no external locking.

package game

import (
	"sync"
	"time"

	"github.com/citidle/go-server/internal/cities"
	"github.com/citidle/go-server/internal/daily"
	"github.com/citidle/go-server/internal/geo"
)

// Evaluator scores guesses against the daily target.
type Evaluator struct {
	ds *cities.Dataset

	mu      sync.Mutex
	targets map[string]int // date key -> dataset index
}

// NewEvaluator wraps a loaded dataset.
func NewEvaluator(ds *cities.Dataset) *Evaluator {
	return &Evaluator{ds: ds, targets: make(map[string]int)}
}

// Dataset exposes the underlying dataset (autocomplete, diagnostics).
func (e *Evaluator) Dataset() *cities.Dataset { return e.ds }

// Target returns the target city for the given moment's Central-zone date.
func (e *Evaluator) Target(t time.Time) *cities.City {
	return e.ds.At(e.targetIndex(daily.DateKey(t)))
}

// targetIndex memoizes the digest computation per date key.
func (e *Evaluator) targetIndex(dateKey string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx, ok := e.targets[dateKey]; ok {
		return idx
	}
	idx := daily.TargetIndex(dateKey, e.ds.Len())
	e.targets[dateKey] = idx
	return idx
}

// Evaluate resolves and scores one guess against the target for date t.
//
// Outcomes:
//   - resolver finds nothing      → unresolved Result (no distance/direction)
//   - resolver finds several      → Result carrying the candidate list
//   - unique match == target      → Correct, zero distance, exact tier
//   - unique match != target      → distance, direction and tier vs. target
func (e *Evaluator) Evaluate(guessText string, t time.Time) *Result {
	target := e.Target(t)

	res := e.ds.Resolve(guessText)
	if res.NoMatch() {
		return &Result{}
	}
	if res.Ambiguous() {
		return &Result{Candidates: res.Candidates}
	}

	city := res.City
	if city.Same(target) {
		return &Result{
			City:      city,
			Direction: geo.DirectionSame,
			Tier:      TierExact,
			Correct:   true,
		}
	}

	// Coordinates were validated at dataset load; these cannot fail.
	dist, _ := geo.Distance(city.Point(), target.Point())
	dir, _ := geo.CompassDirection(city.Point(), target.Point())

	return &Result{
		City:          city,
		DistanceMiles: dist,
		Direction:     dir,
		Tier:          tierFor(dist),
	}
}

// TargetSummary returns the reveal payload for date t's target.
func (e *Evaluator) TargetSummary(t time.Time) Summary {
	c := e.Target(t)
	return Summary{Name: c.Name, State: c.State, Lat: c.Lat, Lng: c.Lng}
}

// tierFor buckets a distance in miles. Lower bounds are inclusive except
// very-close's strict <100: exactly 100.0 miles is warm, 1000.0 very-far.
func tierFor(miles float64) Tier {
	switch {
	case miles < 100:
		return TierVeryClose
	case miles < 500:
		return TierWarm
	case miles < 1000:
		return TierFar
	default:
		return TierVeryFar
	}
}
