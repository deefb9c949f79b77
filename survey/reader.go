package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// surveyFieldCount is the fixed column count of the input format:
// survey, point_id, x, y, z.
const surveyFieldCount = 5

// ReadMeasurements parses the headerless survey CSV from r. A malformed
// record aborts the whole read; surveyors fix the source file rather than
// lose rows silently.
func ReadMeasurements(r io.Reader) ([]Measurement, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = surveyFieldCount
	csvr.TrimLeadingSpace = true

	var out []Measurement
	line := 0
	for {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", line, err)
		}
		m, err := ParseMeasurement(rec[0], rec[1], rec[2], rec[3], rec[4])
		if err != nil {
			var mr *MalformedRecordError
			if errors.As(err, &mr) {
				mr.Line = line
			}
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// ReadMeasurementsFile reads and parses the survey CSV at path.
func ReadMeasurementsFile(path string) ([]Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ms, err := ReadMeasurements(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ms, nil
}
