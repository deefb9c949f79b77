package survey

import (
	"fmt"
	"log"
	"sort"
	"strconv"
)

// DuplicatePolicy selects how GroupByPoint treats two measurements of the
// same point carrying the same survey label.
type DuplicatePolicy string

const (
	// KeepFirst retains the first-seen measurement in input order and drops
	// the rest, logging each drop. Tolerates dirty field data.
	KeepFirst DuplicatePolicy = "keep-first"

	// Reject turns a duplicate into an ingestion error.
	Reject DuplicatePolicy = "reject"
)

// PointHistory is the chronological record of one point across surveys.
// Measurements are sorted ascending by survey label and strictly increasing:
// no two entries share a label.
type PointHistory struct {
	PointID      string
	Measurements []Measurement
}

// DuplicateRecordError reports a (point, survey) pair measured twice when the
// Reject policy is in force.
type DuplicateRecordError struct {
	PointID string
	Survey  string
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("point %s measured twice in survey %s", e.PointID, e.Survey)
}

// SurveyLess reports whether survey label a orders before b. When both labels
// parse as numbers they compare numerically, otherwise lexicographically.
// Labels within one batch are expected to be consistent in kind.
func SurveyLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

// GroupByPoint partitions measurements by point ID and sorts each partition
// chronologically. Every point ID present in the input appears in exactly one
// history. Duplicate survey labels for a point are resolved per policy;
// first-seen retention is deterministic, never an average.
func GroupByPoint(ms []Measurement, policy DuplicatePolicy) (map[string]PointHistory, error) {
	groups := make(map[string][]Measurement)
	seen := make(map[[2]string]bool, len(ms))
	for _, m := range ms {
		key := [2]string{m.PointID, m.Survey}
		if seen[key] {
			if policy == Reject {
				return nil, &DuplicateRecordError{PointID: m.PointID, Survey: m.Survey}
			}
			log.Printf("Dropping duplicate: point %s survey %s", m.PointID, m.Survey)
			continue
		}
		seen[key] = true
		groups[m.PointID] = append(groups[m.PointID], m)
	}

	out := make(map[string]PointHistory, len(groups))
	for id, seq := range groups {
		sort.SliceStable(seq, func(i, j int) bool { return SurveyLess(seq[i].Survey, seq[j].Survey) })
		out[id] = PointHistory{PointID: id, Measurements: seq}
	}
	return out, nil
}
