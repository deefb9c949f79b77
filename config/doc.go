// Package config handles run configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// CLI flags override file values; output paths left empty are derived from
// the input file name the way the original toolbox named its products
// (<name>_InterSurveyData.csv and so on, next to the input).
package config
