package partner

import (
	"fmt"
	"math"
)

// Location is a WGS84 coordinate pair
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether no coordinate has been recorded
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lng == 0
}

// IsValid checks the coordinate ranges
func (l Location) IsValid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Rounded returns the location rounded to the given number of decimals.
// Four decimals is roughly 11 meters, enough to share reverse-geocode results.
func (l Location) Rounded(decimals int) Location {
	p := math.Pow(10, float64(decimals))
	return Location{
		Lat: math.Round(l.Lat*p) / p,
		Lng: math.Round(l.Lng*p) / p,
	}
}

// String formats the location as "lat,lng"
func (l Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.Lat, l.Lng)
}
