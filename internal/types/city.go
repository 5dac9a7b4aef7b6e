package types

// City is a reference point for a covered city: its display name and the
// approximate centre coordinates used for nearest-city resolution.
// The set of cities is fixed at build time and never mutated.
type City struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearestCityResult is the outcome of resolving a coordinate to the
// closest covered city.
type NearestCityResult struct {
	City       City    `json:"city"`
	DistanceKm float64 `json:"distance_km"`
}
