package model

import (
	"strconv"
	"strings"

	"github.com/reoring/wpml"
)

var (
	latBounds = wpml.Between(-90, 90)
	lonBounds = wpml.Between(-180, 180)
)

// Point is a waypoint position. On the wire it is the bare
// <Point><coordinates>lon,lat</coordinates></Point> block.
type Point struct {
	Lon float64
	Lat float64
}

// String formats the point as "lon,lat".
func (p Point) String() string { return formatCoords(p.Lon, p.Lat) }

// ParsePoint reads "lon,lat". A trailing altitude is accepted and dropped.
func ParsePoint(s string) (Point, error) {
	v, err := parseCoords(s, 2, 3, "lon,lat[,alt]")
	if err != nil {
		return Point{}, err
	}
	return Point{Lon: v[0], Lat: v[1]}, nil
}

var PointSchema = wpml.NewSchema[Point]("Point", nil,
	wpml.Custom("coordinates",
		func(p *Point) (any, bool) { return p.String(), true },
		func(p *Point, raw any) error {
			s, err := wpml.ToString(raw)
			if err != nil {
				return err
			}
			*p, err = ParsePoint(s)
			return err
		},
		func(p *Point) wpml.Issues { return checkLatLon("/coordinates", p.Lat, p.Lon) },
	).Bare().Required(),
)

// POIPoint is a point of interest, written as "lat,lon,alt". Note the order
// differs from Point.
type POIPoint struct {
	Lat float64
	Lon float64
	Alt float64
}

// String formats the point as "lat,lon,alt".
func (p POIPoint) String() string { return formatCoords(p.Lat, p.Lon, p.Alt) }

// ParsePOI reads exactly three components "lat,lon,alt".
func ParsePOI(s string) (POIPoint, error) {
	v, err := parseCoords(s, 3, 3, "lat,lon,alt")
	if err != nil {
		return POIPoint{}, err
	}
	return POIPoint{Lat: v[0], Lon: v[1], Alt: v[2]}, nil
}

func parseCoords(s string, min, max int, format string) ([]float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < min || len(parts) > max {
		return nil, wpml.MalformedCoordinate(s, format)
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || !wpml.Finite().Contains(f) {
			return nil, wpml.MalformedCoordinate(s, format)
		}
		out[i] = f
	}
	return out, nil
}

func formatCoords(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func checkLatLon(path string, lat, lon float64) wpml.Issues {
	var iss wpml.Issues
	if !latBounds.Contains(lat) {
		it := wpml.OutOfRangeIssue("latitude", latBounds, lat)
		it.Path = path
		iss = append(iss, it)
	}
	if !lonBounds.Contains(lon) {
		it := wpml.OutOfRangeIssue("longitude", lonBounds, lon)
		it.Path = path
		iss = append(iss, it)
	}
	return iss
}

func checkPOI(path string, p *POIPoint) wpml.Issues {
	if p == nil {
		return nil
	}
	iss := checkLatLon(path, p.Lat, p.Lon)
	if alt := wpml.Finite(); !alt.Contains(p.Alt) {
		it := wpml.OutOfRangeIssue("altitude", alt, p.Alt)
		it.Path = path
		iss = append(iss, it)
	}
	return iss
}
