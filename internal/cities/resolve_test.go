package cities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resolverCSV = `name,state,population,lat,lng,aliases
New York,NY,8336817,40.7128,-74.0060,nyc|new york city
Boston,MA,675647,42.3601,-71.0589,bos
Portland,OR,652503,45.5152,-122.6784,pdx
Portland,ME,300001,43.6591,-70.2568,
San Jose,CA,1013240,37.3382,-121.8863,sj
Kansas City,MO,508090,39.0997,-94.5786,kc
Washington,DC,689545,38.9072,-77.0369,dc|washington dc
St. Louis,MO,301578,38.6270,-90.1994,saint louis
Charleston,WV,305000,38.3498,-81.6326,
`

func resolverDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Load(strings.NewReader(resolverCSV))
	require.NoError(t, err)
	return ds
}

func TestResolveUnique(t *testing.T) {
	ds := resolverDataset(t)
	tests := []struct {
		name  string
		guess string
		want  string
	}{
		{name: "canonical", guess: "Boston", want: "Boston, MA"},
		{name: "case insensitive", guess: "bOsToN", want: "Boston, MA"},
		{name: "surrounding whitespace", guess: "  boston  ", want: "Boston, MA"},
		{name: "collapsed inner whitespace", guess: "san   jose", want: "San Jose, CA"},
		{name: "diacritics folded", guess: "San José", want: "San Jose, CA"},
		{name: "alias", guess: "NYC", want: "New York, NY"},
		{name: "alias with city suffix", guess: "new york city", want: "New York, NY"},
		{name: "city word dropped", guess: "kansas city", want: "Kansas City, MO"},
		{name: "punctuation ignored", guess: "st louis", want: "St. Louis, MO"},
		{name: "saint alias", guess: "Saint Louis", want: "St. Louis, MO"},
		{name: "comma state code", guess: "portland, or", want: "Portland, OR"},
		{name: "comma state name", guess: "portland, oregon", want: "Portland, OR"},
		{name: "trailing state code", guess: "portland me", want: "Portland, ME"},
		{name: "trailing state name", guess: "portland maine", want: "Portland, ME"},
		{name: "two-word state name", guess: "charleston west virginia", want: "Charleston, WV"},
		{name: "dc alias", guess: "washington dc", want: "Washington, DC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ds.Resolve(tt.guess)
			require.True(t, res.City != nil, "expected unique match, got %+v", res)
			assert.Equal(t, tt.want, res.City.Display())
		})
	}
}

func TestResolveAmbiguous(t *testing.T) {
	ds := resolverDataset(t)
	res := ds.Resolve("Portland")
	require.True(t, res.Ambiguous())
	require.Len(t, res.Candidates, 2)
	var names []string
	for _, c := range res.Candidates {
		names = append(names, c.Display())
	}
	assert.ElementsMatch(t, []string{"Portland, ME", "Portland, OR"}, names)
	assert.Nil(t, res.City)
}

func TestResolveNoMatch(t *testing.T) {
	ds := resolverDataset(t)
	for _, guess := range []string{"atlantis", "", "   ", "gotham, ny"} {
		res := ds.Resolve(guess)
		assert.True(t, res.NoMatch(), "guess %q", guess)
	}
}

func TestResolveStateHintFallback(t *testing.T) {
	ds := resolverDataset(t)

	// The qualifier matches no candidate: fall back to the unfiltered set
	// rather than failing.
	res := ds.Resolve("boston, tx")
	require.NotNil(t, res.City)
	assert.Equal(t, "Boston, MA", res.City.Display())

	// Unknown qualifier is treated as part of the name → no match.
	res = ds.Resolve("boston, zz")
	assert.True(t, res.NoMatch())
}

func TestResolveAliasAndNameInterchangeable(t *testing.T) {
	ds := resolverDataset(t)
	byAlias := ds.Resolve("nyc")
	byName := ds.Resolve("new york")
	require.NotNil(t, byAlias.City)
	require.NotNil(t, byName.City)
	assert.True(t, byAlias.City.Same(byName.City))
}

func TestResolveTrailingStateTokenIsPartOfName(t *testing.T) {
	// "new york" ends in a token that is not a state; "washington" alone is
	// both a state name and a city, but a bare name is never split.
	ds := resolverDataset(t)
	res := ds.Resolve("washington")
	require.NotNil(t, res.City)
	assert.Equal(t, "Washington, DC", res.City.Display())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  New York City ", want: "new york"},
		{in: "St. Louis", want: "st louis"},
		{in: "SÃO PAULO", want: "sao paulo"},
		{in: "Coeur d'Alene", want: "coeur d alene"},
		{in: "Minneapolis & St. Paul", want: "minneapolis and st paul"},
		{in: "Oklahoma   City", want: "oklahoma"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}
