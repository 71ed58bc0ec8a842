package weather

import (
	"math"
	"strconv"
	"strings"
)

type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// ParseCoordinate parses caller supplied latitude and longitude strings.
func ParseCoordinate(lat, lon string) (Coordinate, error) {
	latitude, err := parseAxis("lat", lat, 90)
	if err != nil {
		return Coordinate{}, err
	}

	longitude, err := parseAxis("lon", lon, 180)
	if err != nil {
		return Coordinate{}, err
	}

	return Coordinate{Latitude: latitude, Longitude: longitude}, nil
}

func (c Coordinate) Validate() error {
	if err := checkRange("lat", c.Latitude, 90); err != nil {
		return err
	}
	return checkRange("lon", c.Longitude, 180)
}

func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func parseAxis(field, raw string, limit float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &InputError{Field: field, Reason: "is required"}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &InputError{Field: field, Reason: "must be a number"}
	}

	return v, checkRange(field, v, limit)
}

func checkRange(field string, v, limit float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InputError{Field: field, Reason: "must be a finite number"}
	}
	if v < -limit || v > limit {
		return &InputError{Field: field, Reason: "must be between -" + strconv.Itoa(int(limit)) + " and " + strconv.Itoa(int(limit))}
	}
	return nil
}
