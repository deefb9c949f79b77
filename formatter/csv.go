package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gisportsmouth/point-movement/movement"
)

// Column layouts fixed by the sink contracts. With geometry enabled the
// interval sink carries the coordinates of the later measurement.
var (
	intervalColumns    = []string{"point_id", "from_survey", "to_survey", "distance", "azimuth_degrees", "delta_z"}
	intervalGeoColumns = []string{"x", "y", "z"}
	spanColumns        = []string{"point_id", "first_survey", "last_survey", "distance", "azimuth_degrees", "delta_z"}
)

// Presentation precision. The original toolbox wrote distances and height
// changes to 3 decimals; azimuths keep 2 so a bearing like 36.87 survives.
const (
	distanceDigits = 3
	azimuthDigits  = 2
)

// WriteIntervalCSV writes the inter-survey movement table, one row per
// interval result, in the order given.
func WriteIntervalCSV(w io.Writer, results []movement.IntervalResult, geometry bool) error {
	cw := csv.NewWriter(w)
	header := intervalColumns
	if geometry {
		header = append(append([]string{}, intervalColumns...), intervalGeoColumns...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("interval sink: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.PointID,
			r.From.Survey,
			r.To.Survey,
			fixed(r.Distance, distanceDigits),
			fixed(r.AzimuthDeg, azimuthDigits),
			fixed(r.DeltaZ, distanceDigits),
		}
		if geometry {
			row = append(row, coord(r.To.X), coord(r.To.Y), coord(r.To.Z))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("interval sink: point %s: %w", r.PointID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("interval sink: %w", err)
	}
	return nil
}

// WriteSpanCSV writes the total movement table, one row per point, in the
// order given.
func WriteSpanCSV(w io.Writer, results []movement.SpanResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(spanColumns); err != nil {
		return fmt.Errorf("span sink: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.PointID,
			r.First.Survey,
			r.Last.Survey,
			fixed(r.Distance, distanceDigits),
			fixed(r.AzimuthDeg, azimuthDigits),
			fixed(r.DeltaZ, distanceDigits),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("span sink: point %s: %w", r.PointID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("span sink: %w", err)
	}
	return nil
}

func fixed(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// coord echoes an input coordinate at full precision, shortest form.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
