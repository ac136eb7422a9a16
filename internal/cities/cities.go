// internal/cities/cities.go
//
// City dataset management for the game engine.
//
// Responsibilities:
//   - Load the city table from a CSV source, a SQLite database, or the
//     embedded default (see LoadDefault), and validate it at load time.
//   - Apply the population filter (>= 300k) — population is never consulted
//     after load.
//   - Keep the dataset ordered and immutable, shared read-only by all
//     requests.
//   - Build the combined name+alias lookup index used by Resolve.
//
// Dataset invariants (violations abort startup):
//   • every city has a non-empty name, a known state, and valid coordinates
//   • no duplicate (name, state) pairs
//   • the filtered dataset is non-empty
//
// Environment variables (LoadDefault):
//   CITIES_FILE=/path/to/cities.csv
//   CITIES_DB=/path/to/cities.db

package cities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/citidle/go-server/assets"
	"github.com/citidle/go-server/internal/geo"
)

// minPopulation is the dataset-inclusion filter; smaller cities are skipped.
const minPopulation = 300000

// ErrLoad reports a malformed or empty dataset. Fatal at startup.
var ErrLoad = errors.New("cities: invalid dataset")

// City is one guessable/target city.
type City struct {
	Name       string   // display name, e.g. "Portland"
	State      string   // two-letter state code, e.g. "OR"
	Population int      // inclusion filter only
	Lat        float64  // decimal degrees
	Lng        float64  // decimal degrees
	Aliases    []string // alternate inputs that resolve here, e.g. "pdx"
}

// Point returns the city's coordinates.
func (c *City) Point() geo.Point { return geo.Point{Lat: c.Lat, Lng: c.Lng} }

// Display renders the canonical "Name, ST" form.
func (c *City) Display() string { return c.Name + ", " + c.State }

// Same reports whether two cities share the (name, state) identity.
func (c *City) Same(o *City) bool {
	return o != nil && strings.EqualFold(c.Name, o.Name) && strings.EqualFold(c.State, o.State)
}

// Dataset is the ordered, immutable collection of cities plus the lookup
// index. Safe for concurrent readers; never mutated after load.
type Dataset struct {
	cities []City
	index  map[string][]int // normalized name/alias -> city positions
}

// Len returns the number of cities.
func (d *Dataset) Len() int { return len(d.cities) }

// At returns the city at position i.
func (d *Dataset) At(i int) *City { return &d.cities[i] }

// All returns a copy of the city list (for autocomplete and admin surfaces).
func (d *Dataset) All() []City {
	return append([]City(nil), d.cities...)
}

// LoadDefault loads the dataset from CITIES_DB, CITIES_FILE, or the
// embedded CSV, in that order of preference.
func LoadDefault() (*Dataset, error) {
	if dsn := os.Getenv("CITIES_DB"); dsn != "" {
		return LoadSQLite(dsn)
	}
	if path := os.Getenv("CITIES_FILE"); path != "" {
		return LoadFile(path)
	}
	return Load(strings.NewReader(assets.CitiesCSV()))
}

// LoadFile loads a CSV dataset from disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a CSV dataset with the columns
// name,state,population,lat,lng,aliases (aliases pipe-separated, optional).
// Malformed rows are load errors, never silently dropped.
func Load(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrLoad, err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "state", "population", "lat", "lng"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrLoad, required)
		}
	}

	var records []City
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrLoad, line, err)
		}
		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		pop, err := strconv.Atoi(field("population"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: population: %v", ErrLoad, line, err)
		}
		lat, err := strconv.ParseFloat(field("lat"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: lat: %v", ErrLoad, line, err)
		}
		lng, err := strconv.ParseFloat(field("lng"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: lng: %v", ErrLoad, line, err)
		}

		records = append(records, City{
			Name:       field("name"),
			State:      field("state"),
			Population: pop,
			Lat:        lat,
			Lng:        lng,
			Aliases:    splitAliases(field("aliases")),
		})
	}
	return build(records)
}

// splitAliases parses the pipe-separated aliases column.
func splitAliases(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, a := range strings.Split(s, "|") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// build validates raw records, applies the population filter, orders the
// dataset, and constructs the lookup index. Shared by all sources.
func build(records []City) (*Dataset, error) {
	var kept []City
	seen := make(map[string]struct{}, len(records))
	for _, c := range records {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: city with empty name (state %q)", ErrLoad, c.State)
		}
		code, ok := stateCode(strings.ToLower(c.State))
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown state %q", ErrLoad, c.Name, c.State)
		}
		c.State = code // canonical two-letter code
		if err := c.Point().Validate(); err != nil {
			return nil, fmt.Errorf("%s, %s: %w", c.Name, c.State, err)
		}
		if c.Population < minPopulation {
			continue
		}
		key := strings.ToLower(c.Name) + "|" + strings.ToLower(c.State)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate city %s, %s", ErrLoad, c.Name, c.State)
		}
		seen[key] = struct{}{}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no cities above population %d", ErrLoad, minPopulation)
	}

	// Deterministic ordering: the daily index selection depends on it.
	sort.Slice(kept, func(i, j int) bool {
		ni, nj := strings.ToLower(kept[i].Name), strings.ToLower(kept[j].Name)
		if ni != nj {
			return ni < nj
		}
		return strings.ToLower(kept[i].State) < strings.ToLower(kept[j].State)
	})

	d := &Dataset{cities: kept, index: make(map[string][]int, len(kept)*2)}
	for i := range kept {
		d.addKey(Normalize(kept[i].Name), i)
		for _, a := range kept[i].Aliases {
			d.addKey(Normalize(a), i)
		}
	}
	return d, nil
}

// addKey appends position i under key, skipping empties and duplicates.
func (d *Dataset) addKey(key string, i int) {
	if key == "" {
		return
	}
	for _, existing := range d.index[key] {
		if existing == i {
			return
		}
	}
	d.index[key] = append(d.index[key], i)
}
