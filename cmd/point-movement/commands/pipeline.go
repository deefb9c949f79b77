package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gisportsmouth/point-movement/config"
	"github.com/gisportsmouth/point-movement/formatter"
	"github.com/gisportsmouth/point-movement/movement"
	"github.com/gisportsmouth/point-movement/survey"
)

// runStats summarizes one comparison run for the end-of-run report.
type runStats struct {
	Measurements int
	Points       int
	Dropped      int
	Intervals    int
	Spans        int
	Singletons   int
}

// runPipeline executes one comparison run: read, group, compare, write.
// Sinks are written in a fixed order (interval CSV, span CSV, then geometry);
// a failure aborts at that point and earlier sinks stay fully written.
func runPipeline(cfg config.AppConfig) (runStats, error) {
	var st runStats

	log.Printf("Processing: %s", cfg.Input)
	ms, err := survey.ReadMeasurementsFile(cfg.Input)
	if err != nil {
		return st, err
	}
	st.Measurements = len(ms)

	hist, err := survey.GroupByPoint(ms, survey.DuplicatePolicy(cfg.DuplicatePolicy))
	if err != nil {
		return st, err
	}
	st.Points = len(hist)

	ids := make([]string, 0, len(hist))
	kept := 0
	for id, h := range hist {
		ids = append(ids, id)
		kept += len(h.Measurements)
	}
	st.Dropped = st.Measurements - kept
	sort.Strings(ids)

	// Points are walked in ID order and each history is already
	// chronological, so rows come out sorted by (point, from survey) and
	// re-runs are byte-identical.
	var (
		intervals []movement.IntervalResult
		spans     []movement.SpanResult
		histories []survey.PointHistory
	)
	for _, id := range ids {
		h := hist[id]
		histories = append(histories, h)
		iv, err := movement.Intervals(h)
		if err != nil {
			return st, err
		}
		if len(iv) == 0 {
			st.Singletons++
		}
		intervals = append(intervals, iv...)
		sp, ok, err := movement.Span(h)
		if err != nil {
			return st, err
		}
		if ok {
			spans = append(spans, sp)
		}
	}
	st.Intervals = len(intervals)
	st.Spans = len(spans)

	geometry := !cfg.TabularOnly
	err = writeFileSink(cfg.Output.IntervalCSV, "interval", func(w io.Writer) error {
		return formatter.WriteIntervalCSV(w, intervals, geometry)
	})
	if err != nil {
		return st, err
	}
	err = writeFileSink(cfg.Output.SpanCSV, "span", func(w io.Writer) error {
		return formatter.WriteSpanCSV(w, spans)
	})
	if err != nil {
		return st, err
	}
	if geometry {
		err = writeFileSink(cfg.Output.PointsGeoJSON, "points", func(w io.Writer) error {
			return formatter.WriteGeoJSON(w, formatter.MovementPoints(intervals, cfg.CRS), "points")
		})
		if err != nil {
			return st, err
		}
		err = writeFileSink(cfg.Output.LinesGeoJSON, "lines", func(w io.Writer) error {
			return formatter.WriteGeoJSON(w, formatter.MovementLines(histories, cfg.CRS), "lines")
		})
		if err != nil {
			return st, err
		}
	}
	return st, nil
}

// writeFileSink creates (overwriting) one output file and hands it to write.
func writeFileSink(path, name string, write func(io.Writer) error) error {
	log.Printf("Creating: %s", path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s sink: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s sink: %w", name, err)
	}
	return nil
}

// renderSummary formats the end-of-run report as a table.
func renderSummary(st runStats) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"metric", "count"})
	tbl.AppendRows([]table.Row{
		{"measurements", st.Measurements},
		{"points", st.Points},
		{"duplicates dropped", st.Dropped},
		{"intervals", st.Intervals},
		{"spans", st.Spans},
		{"single-survey points", st.Singletons},
	})
	return tbl.Render()
}
