package config

// OutputConfig names the four run products. Empty paths are derived from the
// input file name by ApplyDefaults.
type OutputConfig struct {
	IntervalCSV   string `yaml:"intervalCSV"`
	SpanCSV       string `yaml:"spanCSV"`
	PointsGeoJSON string `yaml:"pointsGeoJSON"`
	LinesGeoJSON  string `yaml:"linesGeoJSON"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	// Input is the headerless survey CSV: survey, point_id, x, y, z.
	Input string `yaml:"input" validate:"required"`

	// CRS is opaque coordinate reference metadata stamped on geometry
	// output verbatim. Empty means omitted.
	CRS string `yaml:"crs"`

	// TabularOnly suppresses geometry emission, leaving the two CSV tables.
	// The zero value keeps the original toolbox behavior of always writing
	// geometry products.
	TabularOnly bool `yaml:"tabularOnly"`

	// DuplicatePolicy selects handling of repeated (point, survey) records:
	// keep-first (default) or reject.
	DuplicatePolicy string `yaml:"duplicatePolicy" validate:"omitempty,oneof=keep-first reject"`

	Output OutputConfig `yaml:"output"`
}
