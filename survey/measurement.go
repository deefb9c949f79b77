package survey

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Measurement is one observation of a monumented point during a single survey
// campaign. Values are immutable once constructed.
type Measurement struct {
	Survey  string
	PointID string
	X       float64
	Y       float64
	Z       float64
}

// MalformedRecordError reports an input record that could not be turned into a
// Measurement. Line is the 1-based record number in the source, 0 when unknown.
type MalformedRecordError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("record %d: field %s: invalid value %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("field %s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// ParseMeasurement builds a Measurement from raw string fields. x, y and z
// must parse as finite real numbers and pointID must be non-empty.
func ParseMeasurement(surveyLabel, pointID, x, y, z string) (Measurement, error) {
	m := Measurement{
		Survey:  strings.TrimSpace(surveyLabel),
		PointID: strings.TrimSpace(pointID),
	}
	if m.PointID == "" {
		return Measurement{}, &MalformedRecordError{Field: "point_id", Value: pointID, Err: errEmptyPointID}
	}
	var err error
	if m.X, err = parseCoordinate("x", x); err != nil {
		return Measurement{}, err
	}
	if m.Y, err = parseCoordinate("y", y); err != nil {
		return Measurement{}, err
	}
	if m.Z, err = parseCoordinate("z", z); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

var (
	errEmptyPointID = fmt.Errorf("empty point ID")
	errNotFinite    = fmt.Errorf("not a finite number")
)

func parseCoordinate(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &MalformedRecordError{Field: field, Value: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &MalformedRecordError{Field: field, Value: raw, Err: errNotFinite}
	}
	return v, nil
}
