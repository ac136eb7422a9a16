// internal/geo/geo.go
//
// Great-circle geometry for the guess feedback.
// Responsibilities:
//   - Haversine distance between two coordinate pairs, in miles.
//   - Initial bearing (forward azimuth) from one point to another.
//   - Bucketing a bearing into one of the 8 principal compass directions.
//   - Coordinate validation (ErrInvalidCoordinate for out-of-range lat/lng).
//
// All functions are pure; the only failure mode is a malformed coordinate.

package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate reports a latitude outside [-90, 90] or a
// longitude outside [-180, 180].
var ErrInvalidCoordinate = errors.New("invalid coordinate")

const (
	// earthRadiusMiles is the mean Earth radius.
	earthRadiusMiles = 3958.8

	// sameLocationMiles is the epsilon under which two points are reported
	// as "same location" instead of an arbitrary bearing.
	sameLocationMiles = 0.1
)

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Validate checks that p is a plausible coordinate pair.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) ||
		p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidCoordinate, p.Lat, p.Lng)
	}
	return nil
}

// Direction is one of the 8 principal compass directions, or
// DirectionSame when two points are within the same-location epsilon.
type Direction string

const (
	DirectionN    Direction = "N"
	DirectionNE   Direction = "NE"
	DirectionE    Direction = "E"
	DirectionSE   Direction = "SE"
	DirectionS    Direction = "S"
	DirectionSW   Direction = "SW"
	DirectionW    Direction = "W"
	DirectionNW   Direction = "NW"
	DirectionSame Direction = "same location"
)

// compassRose is indexed by azimuth sector (45° each, centered on the value).
var compassRose = [8]Direction{
	DirectionN, DirectionNE, DirectionE, DirectionSE,
	DirectionS, DirectionSW, DirectionW, DirectionNW,
}

// Distance returns the haversine distance between a and b in miles.
// Symmetric, non-negative, and zero iff a and b are the same point.
func Distance(a, b Point) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180.0)
	lat1 := a.Lat * (math.Pi / 180.0)
	lat2 := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Asin(math.Min(1, math.Sqrt(h)))

	return earthRadiusMiles * c, nil
}

// Bearing returns the initial bearing from a to b in degrees [0, 360).
func Bearing(a, b Point) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	lat1 := a.Lat * (math.Pi / 180.0)
	lat2 := b.Lat * (math.Pi / 180.0)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180.0)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	brng := math.Atan2(y, x)

	return math.Mod(brng*(180.0/math.Pi)+360.0, 360.0), nil
}

// CompassDirection buckets the bearing from a to b into a compass direction.
// Points closer than the same-location epsilon yield DirectionSame.
func CompassDirection(a, b Point) (Direction, error) {
	dist, err := Distance(a, b)
	if err != nil {
		return "", err
	}
	if dist < sameLocationMiles {
		return DirectionSame, nil
	}
	brng, err := Bearing(a, b)
	if err != nil {
		return "", err
	}
	return bucket(brng), nil
}

// bucket maps an azimuth in [0, 360) to its 45° sector.
func bucket(azimuth float64) Direction {
	sector := int(math.Mod(azimuth+22.5, 360) / 45)
	return compassRose[sector]
}
