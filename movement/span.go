package movement

import "github.com/gisportsmouth/point-movement/survey"

// SpanResult is the total movement of one point between its earliest and
// latest survey. Intermediate surveys are ignored: total displacement only,
// not path length.
type SpanResult struct {
	PointID string
	First   survey.Measurement
	Last    survey.Measurement
	Delta
}

// Span compares a point's first measurement to its last. The second return
// is false for single-measurement histories, which have no span to report.
func Span(h survey.PointHistory) (SpanResult, bool, error) {
	if len(h.Measurements) < 2 {
		return SpanResult{}, false, nil
	}
	first := h.Measurements[0]
	last := h.Measurements[len(h.Measurements)-1]
	d, err := Compare(first, last)
	if err != nil {
		return SpanResult{}, false, err
	}
	return SpanResult{PointID: h.PointID, First: first, Last: last, Delta: d}, true, nil
}
