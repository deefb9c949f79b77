package movement

import "github.com/gisportsmouth/point-movement/survey"

// IntervalResult is the movement of one point between two consecutive
// surveys. From and To are carried whole so output stages can project
// survey labels and coordinates without reaching back into the history.
type IntervalResult struct {
	PointID string
	From    survey.Measurement
	To      survey.Measurement
	Delta
}

// Intervals compares every consecutive pair in a point's history, producing
// exactly max(0, len-1) results. A single-measurement history yields nothing:
// there is no interval to report. Pure function of its input.
func Intervals(h survey.PointHistory) ([]IntervalResult, error) {
	if len(h.Measurements) < 2 {
		return nil, nil
	}
	out := make([]IntervalResult, 0, len(h.Measurements)-1)
	for i := 1; i < len(h.Measurements); i++ {
		from, to := h.Measurements[i-1], h.Measurements[i]
		d, err := Compare(from, to)
		if err != nil {
			return nil, err
		}
		out = append(out, IntervalResult{PointID: h.PointID, From: from, To: to, Delta: d})
	}
	return out, nil
}
