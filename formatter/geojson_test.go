package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gisportsmouth/point-movement/movement"
	"github.com/gisportsmouth/point-movement/survey"
)

func TestMovementPoints(t *testing.T) {
	r := interval(t, meas("2008", "FEAT01", 0, 0, 10), meas("2010", "FEAT01", 3, 4, 12))
	fc := MovementPoints([]movement.IntervalResult{r}, "EPSG:27700")

	if fc.Type != "FeatureCollection" {
		t.Errorf("unexpected collection type %q", fc.Type)
	}
	if fc.CRS == nil || fc.CRS.Properties["name"] != "EPSG:27700" {
		t.Errorf("expected CRS passthrough, got %+v", fc.CRS)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}
	f := fc.Features[0]
	if f.Geometry.Type != "Point" {
		t.Errorf("expected Point geometry, got %s", f.Geometry.Type)
	}
	coords, ok := f.Geometry.Coordinates.([]float64)
	if !ok || len(coords) != 3 || coords[0] != 3 || coords[1] != 4 || coords[2] != 12 {
		t.Errorf("expected later measurement coordinates, got %v", f.Geometry.Coordinates)
	}
	if f.Properties["distance"] != 5.0 {
		t.Errorf("expected distance 5, got %v", f.Properties["distance"])
	}
	if f.Properties["azimuth_degrees"] != 36.87 {
		t.Errorf("expected azimuth rounded to 36.87, got %v", f.Properties["azimuth_degrees"])
	}
}

func TestMovementPointsNoCRS(t *testing.T) {
	fc := MovementPoints(nil, "")
	b, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "crs") {
		t.Errorf("empty CRS must be omitted, got %s", b)
	}
}

func TestMovementLines(t *testing.T) {
	h := survey.PointHistory{PointID: "FEAT01", Measurements: []survey.Measurement{
		meas("2008", "FEAT01", 0, 0, 10),
		meas("2010", "FEAT01", 3, 4, 12),
		meas("2012", "FEAT01", 3, 10, 11),
	}}
	single := survey.PointHistory{PointID: "LONER", Measurements: []survey.Measurement{
		meas("2008", "LONER", 9, 9, 9),
	}}
	fc := MovementLines([]survey.PointHistory{h, single}, "")

	if len(fc.Features) != 1 {
		t.Fatalf("single-survey points carry no line; expected 1 feature, got %d", len(fc.Features))
	}
	f := fc.Features[0]
	if f.Geometry.Type != "LineString" {
		t.Errorf("expected LineString geometry, got %s", f.Geometry.Type)
	}
	coords, ok := f.Geometry.Coordinates.([][]float64)
	if !ok || len(coords) != 3 {
		t.Fatalf("expected 3 vertices, got %v", f.Geometry.Coordinates)
	}
	if f.Properties["first_survey"] != "2008" || f.Properties["last_survey"] != "2012" {
		t.Errorf("unexpected survey labels: %+v", f.Properties)
	}
	// path length, not displacement: 5 + 6
	if f.Properties["length"] != 11.0 {
		t.Errorf("expected length 11, got %v", f.Properties["length"])
	}
}

func TestWriteGeoJSON(t *testing.T) {
	fc := MovementPoints(nil, "EPSG:27700")
	var b strings.Builder
	if err := WriteGeoJSON(&b, fc, "points"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["type"] != "FeatureCollection" {
		t.Errorf("unexpected type: %v", decoded["type"])
	}
}
