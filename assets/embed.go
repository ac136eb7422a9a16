package assets

import (
	_ "embed"
)

// cities.csv is the default dataset: US cities with population >= 300k,
// columns name,state,population,lat,lng,aliases (aliases pipe-separated).
//
//go:embed cities.csv
var citiesCSV string

// CitiesCSV returns the embedded default city dataset.
func CitiesCSV() string {
	return citiesCSV
}
