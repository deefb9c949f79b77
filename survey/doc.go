// Package survey provides the measurement record model and the grouping of
// repeated measurements into per-point histories.
//
// This package is data-source agnostic for everything except ReadMeasurements,
// which parses the headerless survey CSV format:
//
//	survey, point_id, x, y, z
//	e.g. 2008,FEAT01,449850.6,75308.663,19.9
//
// It contains:
//   - Measurement parsing and validation
//   - Survey label ordering (numeric when possible, lexicographic otherwise)
//   - Partitioning of measurements into chronological point histories
package survey
