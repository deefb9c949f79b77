package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads an AppConfig from a YAML file. A missing path returns a zero
// config so a run can be driven entirely by flags.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields. Output names follow the original
// toolbox convention: products sit next to the input and carry its base
// name plus a product suffix.
func (c *AppConfig) ApplyDefaults() {
	if c.DuplicatePolicy == "" {
		c.DuplicatePolicy = "keep-first"
	}
	if c.Input == "" {
		return
	}
	dir := filepath.Dir(c.Input)
	base := strings.TrimSuffix(filepath.Base(c.Input), filepath.Ext(c.Input))
	if c.Output.IntervalCSV == "" {
		c.Output.IntervalCSV = filepath.Join(dir, base+"_InterSurveyData.csv")
	}
	if c.Output.SpanCSV == "" {
		c.Output.SpanCSV = filepath.Join(dir, base+"_TotalSurveyData.csv")
	}
	if c.Output.PointsGeoJSON == "" {
		c.Output.PointsGeoJSON = filepath.Join(dir, base+"_MovementPoints.geojson")
	}
	if c.Output.LinesGeoJSON == "" {
		c.Output.LinesGeoJSON = filepath.Join(dir, base+"_MovementLine.geojson")
	}
}

// Validate checks the assembled configuration, after file load, flag
// overrides and defaults.
func (c *AppConfig) Validate() error {
	v := validator.New()
	return v.Struct(c)
}
