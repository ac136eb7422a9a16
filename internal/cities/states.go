// internal/cities/states.go
//
// US state table used to recognize the optional state qualifier in guesses
// ("portland, or" / "portland oregon"). Both two-letter codes and full
// names resolve to the canonical code.

package cities

// stateNames maps lowercased state names and codes to the canonical code.
var stateNames = map[string]string{
	"al": "AL", "alabama": "AL",
	"ak": "AK", "alaska": "AK",
	"az": "AZ", "arizona": "AZ",
	"ar": "AR", "arkansas": "AR",
	"ca": "CA", "california": "CA",
	"co": "CO", "colorado": "CO",
	"ct": "CT", "connecticut": "CT",
	"de": "DE", "delaware": "DE",
	"fl": "FL", "florida": "FL",
	"ga": "GA", "georgia": "GA",
	"hi": "HI", "hawaii": "HI",
	"id": "ID", "idaho": "ID",
	"il": "IL", "illinois": "IL",
	"in": "IN", "indiana": "IN",
	"ia": "IA", "iowa": "IA",
	"ks": "KS", "kansas": "KS",
	"ky": "KY", "kentucky": "KY",
	"la": "LA", "louisiana": "LA",
	"me": "ME", "maine": "ME",
	"md": "MD", "maryland": "MD",
	"ma": "MA", "massachusetts": "MA",
	"mi": "MI", "michigan": "MI",
	"mn": "MN", "minnesota": "MN",
	"ms": "MS", "mississippi": "MS",
	"mo": "MO", "missouri": "MO",
	"mt": "MT", "montana": "MT",
	"ne": "NE", "nebraska": "NE",
	"nv": "NV", "nevada": "NV",
	"nh": "NH", "new hampshire": "NH",
	"nj": "NJ", "new jersey": "NJ",
	"nm": "NM", "new mexico": "NM",
	"ny": "NY", "new york": "NY",
	"nc": "NC", "north carolina": "NC",
	"nd": "ND", "north dakota": "ND",
	"oh": "OH", "ohio": "OH",
	"ok": "OK", "oklahoma": "OK",
	"or": "OR", "oregon": "OR",
	"pa": "PA", "pennsylvania": "PA",
	"ri": "RI", "rhode island": "RI",
	"sc": "SC", "south carolina": "SC",
	"sd": "SD", "south dakota": "SD",
	"tn": "TN", "tennessee": "TN",
	"tx": "TX", "texas": "TX",
	"ut": "UT", "utah": "UT",
	"vt": "VT", "vermont": "VT",
	"va": "VA", "virginia": "VA",
	"wa": "WA", "washington": "WA",
	"wv": "WV", "west virginia": "WV",
	"wi": "WI", "wisconsin": "WI",
	"wy": "WY", "wyoming": "WY",
	"dc": "DC", "district of columbia": "DC",
}

// stateCode returns the canonical code for a lowercased state code or name.
func stateCode(s string) (string, bool) {
	code, ok := stateNames[s]
	return code, ok
}
