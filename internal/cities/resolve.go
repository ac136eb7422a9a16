// internal/cities/resolve.go
//
// Free-text guess resolution.
//
// Resolve turns a guess like "Portland", "portland, or", "NYC" or
// "são josé" into zero, one, or many dataset entries:
//   - no candidates            → NoMatch
//   - exactly one candidate    → unique match (Resolution.City)
//   - several candidates       → Ambiguous (Resolution.Candidates); the
//     caller re-prompts for a state qualifier
//
// The state qualifier is recognized in two forms: "name, st" (comma) and a
// trailing state code/name token. It only counts when it names a known
// state; anything else stays part of the city name. If filtering by the
// qualifier would empty the candidate set, the qualifier is ignored and
// the unfiltered set is used — a wrong state never hides a real match.

package cities

import "strings"

// Resolution is the outcome of resolving one guess. Exactly one of the
// three shapes holds: City set (unique), Candidates set (ambiguous), or
// neither (no match).
type Resolution struct {
	City       *City
	Candidates []*City
}

// NoMatch reports that the guess matched nothing.
func (r Resolution) NoMatch() bool { return r.City == nil && len(r.Candidates) == 0 }

// Ambiguous reports that the guess matched several cities.
func (r Resolution) Ambiguous() bool { return len(r.Candidates) > 0 }

// Resolve matches a raw guess against the name+alias index.
func (d *Dataset) Resolve(query string) Resolution {
	name, hint, comma := splitStateHint(query)
	cands := d.lookup(name)

	// The trailing token looked like a state but was really part of the
	// name; fall back to the whole string.
	if len(cands) == 0 && hint != "" && !comma {
		if full := d.lookup(Normalize(query)); len(full) > 0 {
			cands, hint = full, ""
		}
	}
	if len(cands) == 0 {
		return Resolution{}
	}

	if hint != "" {
		var filtered []*City
		for _, c := range cands {
			if c.State == hint {
				filtered = append(filtered, c)
			}
		}
		// Graceful fallback: keep the unfiltered set when the qualifier
		// matches none of the candidates.
		if len(filtered) > 0 {
			cands = filtered
		}
	}

	if len(cands) == 1 {
		return Resolution{City: cands[0]}
	}
	return Resolution{Candidates: cands}
}

// splitStateHint separates an optional trailing state qualifier from the
// name. comma reports whether the qualifier came from a comma form, which
// is unambiguous and needs no full-string fallback.
func splitStateHint(query string) (name, hint string, comma bool) {
	if i := strings.LastIndex(query, ","); i >= 0 {
		if code, ok := stateCode(Normalize(query[i+1:])); ok {
			return Normalize(query[:i]), code, true
		}
		return Normalize(query), "", false
	}

	norm := Normalize(query)
	tokens := strings.Fields(norm)
	// Try a two-word state name first ("charleston west virginia"),
	// then a single trailing code/name. The remaining name must be
	// non-empty, so a bare "new york" stays a city.
	for _, n := range []int{2, 1} {
		if len(tokens) > n {
			if code, ok := stateCode(strings.Join(tokens[len(tokens)-n:], " ")); ok {
				return strings.Join(tokens[:len(tokens)-n], " "), code, false
			}
		}
	}
	return norm, "", false
}

// lookup returns the cities indexed under key, in dataset order.
func (d *Dataset) lookup(key string) []*City {
	indices, ok := d.index[key]
	if !ok {
		return nil
	}
	out := make([]*City, 0, len(indices))
	for _, i := range indices {
		out = append(out, &d.cities[i])
	}
	return out
}
