// internal/cities/sqlite.go
//
// SQLite-backed dataset source, for deployments that keep the city table
// in a database instead of a CSV. Expects a `cities` table with columns
// matching the CSV layout:
//
//   CREATE TABLE cities (
//     name       TEXT NOT NULL,
//     state      TEXT NOT NULL,
//     population INTEGER NOT NULL,
//     lat        REAL NOT NULL,
//     lng        REAL NOT NULL,
//     aliases    TEXT            -- pipe-separated, may be NULL
//   );
//
// Validation and the population filter are identical to the CSV path.

package cities

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite opens the database at dsn read-only and loads the cities table.
func LoadSQLite(dsn string) (*Dataset, error) {
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLoad, dsn, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name, state, population, lat, lng, COALESCE(aliases, '')
	                       FROM cities`)
	if err != nil {
		return nil, fmt.Errorf("%w: query cities: %v", ErrLoad, err)
	}
	defer rows.Close()

	var records []City
	for rows.Next() {
		var c City
		var aliases string
		if err := rows.Scan(&c.Name, &c.State, &c.Population, &c.Lat, &c.Lng, &aliases); err != nil {
			return nil, fmt.Errorf("%w: scan city row: %v", ErrLoad, err)
		}
		c.Aliases = splitAliases(aliases)
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read cities: %v", ErrLoad, err)
	}
	return build(records)
}
