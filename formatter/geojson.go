package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/gisportsmouth/point-movement/movement"
	"github.com/gisportsmouth/point-movement/survey"
)

// GeoJSON shapes. Coordinates are emitted as [x, y, z] in the input's
// coordinate system; no reprojection happens anywhere in this tool.
type FeatureCollection struct {
	Type     string    `json:"type"`
	CRS      *CRS      `json:"crs,omitempty"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// CRS is a named coordinate reference system stamped on output verbatim.
// The name is opaque passthrough from configuration, never interpreted.
type CRS struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
}

func namedCRS(name string) *CRS {
	if name == "" {
		return nil
	}
	return &CRS{Type: "name", Properties: map[string]string{"name": name}}
}

// MovementPoints builds the interval geometry output: one point feature per
// interval result, located at the later measurement.
func MovementPoints(results []movement.IntervalResult, crs string) *FeatureCollection {
	fc := &FeatureCollection{Type: "FeatureCollection", CRS: namedCRS(crs), Features: []Feature{}}
	for _, r := range results {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{r.To.X, r.To.Y, r.To.Z},
			},
			Properties: map[string]any{
				"point_id":        r.PointID,
				"from_survey":     r.From.Survey,
				"to_survey":       r.To.Survey,
				"distance":        round(r.Distance, distanceDigits),
				"azimuth_degrees": round(r.AzimuthDeg, azimuthDigits),
				"delta_z":         round(r.DeltaZ, distanceDigits),
			},
		})
	}
	return fc
}

// MovementLines builds the span geometry output: one line feature per point
// threading every measurement in survey order. The length property is the
// planar length of the whole path, not the first-to-last displacement.
func MovementLines(histories []survey.PointHistory, crs string) *FeatureCollection {
	fc := &FeatureCollection{Type: "FeatureCollection", CRS: namedCRS(crs), Features: []Feature{}}
	for _, h := range histories {
		if len(h.Measurements) < 2 {
			continue
		}
		coords := make([][]float64, len(h.Measurements))
		length := 0.0
		for i, m := range h.Measurements {
			coords[i] = []float64{m.X, m.Y, m.Z}
			if i > 0 {
				prev := h.Measurements[i-1]
				length += math.Hypot(m.X-prev.X, m.Y-prev.Y)
			}
		}
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: coords,
			},
			Properties: map[string]any{
				"point_id":     h.PointID,
				"first_survey": h.Measurements[0].Survey,
				"last_survey":  h.Measurements[len(h.Measurements)-1].Survey,
				"length":       round(length, distanceDigits),
			},
		})
	}
	return fc
}

// WriteGeoJSON serializes a feature collection to w. The sink name is only
// used to label a failed write.
func WriteGeoJSON(w io.Writer, fc *FeatureCollection, sink string) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("%s sink: %w", sink, err)
	}
	return nil
}

func round(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
