// Package commands implements the point-movement CLI subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gisportsmouth/point-movement/config"
	"github.com/gisportsmouth/point-movement/internal"
)

// RunCommand holds the configuration for the run command.
type RunCommand struct {
	configPath      string
	crs             string
	tabularOnly     bool
	duplicatePolicy string
	intervalCSV     string
	spanCSV         string
	pointsGeoJSON   string
	linesGeoJSON    string
}

// NewRunCommand creates and configures the run command.
func NewRunCommand() *cobra.Command {
	rc := &RunCommand{}

	cobraCmd := &cobra.Command{
		Use:   "run [input.csv]",
		Short: "Compare repeated point surveys and write movement tables",
		Long: `Run the point-to-point comparison over a survey CSV.

Input is headerless: survey, point_id, x, y, z. Outputs default to the
input's directory and base name:
  <name>_InterSurveyData.csv   movement between consecutive surveys
  <name>_TotalSurveyData.csv   movement between first and last survey
  <name>_MovementPoints.geojson  interval rows located at the later survey
  <name>_MovementLine.geojson    one line per point through all its surveys

Existing output files are overwritten. Sinks are written in the order
listed; the run is not transactional across them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: rc.run,
	}

	cobraCmd.Flags().StringVarP(&rc.configPath, "config", "c", "", "YAML config file (flags override it)")
	cobraCmd.Flags().StringVar(&rc.crs, "crs", "", "Coordinate reference system stamped on geometry output (opaque)")
	cobraCmd.Flags().BoolVar(&rc.tabularOnly, "tabular-only", false, "Write the two CSV tables only, no geometry output")
	cobraCmd.Flags().StringVar(&rc.duplicatePolicy, "duplicate-policy", "", "Handling of repeated (point, survey) records: keep-first|reject")
	cobraCmd.Flags().StringVar(&rc.intervalCSV, "interval-csv", "", "Inter-survey table path (default derived from input)")
	cobraCmd.Flags().StringVar(&rc.spanCSV, "span-csv", "", "Total movement table path (default derived from input)")
	cobraCmd.Flags().StringVar(&rc.pointsGeoJSON, "points-geojson", "", "Interval point geometry path (default derived from input)")
	cobraCmd.Flags().StringVar(&rc.linesGeoJSON, "lines-geojson", "", "Movement line geometry path (default derived from input)")

	return cobraCmd
}

func (rc *RunCommand) run(cmd *cobra.Command, args []string) error {
	internal.InitLogging()

	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cmd.Flags().Changed("crs") {
		cfg.CRS = rc.crs
	}
	if cmd.Flags().Changed("tabular-only") {
		cfg.TabularOnly = rc.tabularOnly
	}
	if cmd.Flags().Changed("duplicate-policy") {
		cfg.DuplicatePolicy = rc.duplicatePolicy
	}
	if rc.intervalCSV != "" {
		cfg.Output.IntervalCSV = rc.intervalCSV
	}
	if rc.spanCSV != "" {
		cfg.Output.SpanCSV = rc.spanCSV
	}
	if rc.pointsGeoJSON != "" {
		cfg.Output.PointsGeoJSON = rc.pointsGeoJSON
	}
	if rc.linesGeoJSON != "" {
		cfg.Output.LinesGeoJSON = rc.linesGeoJSON
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	stats, err := runPipeline(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(stats))
	return nil
}
