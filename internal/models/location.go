package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Location is the decoded form of the JSON string stored on alerts and
// terminals. Two encodings exist in stored data:
//
//	{"lat":14.6,"lng":121.0,"address":"..."}
//	{"address":"...","coordinates":"121.0,14.6"}
//
// The second one lists longitude first.
type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type rawLocation struct {
	Address     string          `json:"address"`
	Lat         json.RawMessage `json:"lat"`
	Lng         json.RawMessage `json:"lng"`
	Coordinates string          `json:"coordinates"`
}

// ParseLocation decodes either stored encoding. An empty string yields a
// zero Location.
func ParseLocation(raw string) (Location, error) {
	if strings.TrimSpace(raw) == "" {
		return Location{}, nil
	}
	var r rawLocation
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Location{}, fmt.Errorf("failed to decode location: %w", err)
	}

	loc := Location{Address: r.Address}
	if r.Coordinates != "" {
		parts := strings.Split(r.Coordinates, ",")
		if len(parts) != 2 {
			return Location{}, fmt.Errorf("malformed coordinates %q", r.Coordinates)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return Location{}, fmt.Errorf("malformed longitude: %w", err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return Location{}, fmt.Errorf("malformed latitude: %w", err)
		}
		loc.Lat, loc.Lng = lat, lng
		return loc, nil
	}

	var err error
	if loc.Lat, err = parseCoordinate(r.Lat); err != nil {
		return Location{}, fmt.Errorf("malformed latitude: %w", err)
	}
	if loc.Lng, err = parseCoordinate(r.Lng); err != nil {
		return Location{}, fmt.Errorf("malformed longitude: %w", err)
	}
	return loc, nil
}

// parseCoordinate accepts a JSON number or a numeric string.
func parseCoordinate(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Encode returns the canonical {lat,lng,address} encoding.
func (l Location) Encode() string {
	b, _ := json.Marshal(l)
	return string(b)
}

// ResolveLocation decodes the alert's own location and falls back to the
// terminal's when the alert has none or it cannot be decoded.
func ResolveLocation(alertLocation, terminalLocation string) Location {
	if loc, err := ParseLocation(alertLocation); err == nil && alertLocation != "" {
		return loc
	}
	loc, _ := ParseLocation(terminalLocation)
	return loc
}
