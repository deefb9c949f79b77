// Package formatter projects movement results onto the output sink schemas.
//
// Two tabular sinks exist: inter-survey movement (one row per consecutive
// survey pair) and total movement (one row per point, first to last survey).
// With geometry enabled the tabular rows gain coordinate columns and two
// GeoJSON outputs are produced: interval points located at the later
// measurement, and one movement line per point through all its measurements.
//
// Rounding is a presentation concern and happens only here: distances and
// height changes to 3 decimals, azimuths to 2. The comparison engine is
// never rounded. Sink write errors propagate unchanged apart from naming
// the sink that failed.
package formatter
