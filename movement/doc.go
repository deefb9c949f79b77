// Package movement computes how far, in which direction and how much in
// height a survey point moved between two of its measurements.
//
// Azimuths are horizontal bearings in degrees clockwise from grid north,
// always in [0, 360). Distances are planar; no geodesic or coordinate-system
// math happens here, the inputs are treated as projected coordinates.
package movement
