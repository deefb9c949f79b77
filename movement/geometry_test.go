package movement

import (
	"errors"
	"math"
	"testing"

	"github.com/gisportsmouth/point-movement/survey"
)

func meas(surveyLabel, pointID string, x, y, z float64) survey.Measurement {
	return survey.Measurement{Survey: surveyLabel, PointID: pointID, X: x, Y: y, Z: z}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompare(t *testing.T) {
	a := meas("2008", "FEAT01", 0, 0, 10)
	b := meas("2010", "FEAT01", 3, 4, 12)
	d, err := Compare(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Distance != 5 {
		t.Errorf("expected distance 5, got %v", d.Distance)
	}
	if !closeTo(d.AzimuthDeg, 36.86989764584402) {
		t.Errorf("expected azimuth ~36.87, got %v", d.AzimuthDeg)
	}
	if d.DeltaZ != 2 {
		t.Errorf("expected delta_z 2, got %v", d.DeltaZ)
	}
}

func TestCompareCardinalAzimuths(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{name: "north", dx: 0, dy: 1, want: 0},
		{name: "east", dx: 1, dy: 0, want: 90},
		{name: "south", dx: 0, dy: -1, want: 180},
		{name: "west", dx: -1, dy: 0, want: 270},
		{name: "north-west", dx: -1, dy: 1, want: 315},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Compare(meas("1", "P", 0, 0, 0), meas("2", "P", tt.dx, tt.dy, 0))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !closeTo(d.AzimuthDeg, tt.want) {
				t.Errorf("expected azimuth %v, got %v", tt.want, d.AzimuthDeg)
			}
		})
	}
}

func TestCompareAzimuthRange(t *testing.T) {
	// every direction around the compass lands in [0, 360)
	for deg := 0; deg < 360; deg += 5 {
		rad := float64(deg) * math.Pi / 180
		d, err := Compare(meas("1", "P", 0, 0, 0), meas("2", "P", math.Sin(rad), math.Cos(rad), 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.AzimuthDeg < 0 || d.AzimuthDeg >= 360 {
			t.Errorf("azimuth out of range for bearing %d: %v", deg, d.AzimuthDeg)
		}
		if !closeTo(d.AzimuthDeg, float64(deg)) {
			t.Errorf("expected azimuth %d, got %v", deg, d.AzimuthDeg)
		}
	}
}

func TestCompareVerticalOnly(t *testing.T) {
	d, err := Compare(meas("1", "P", 2, 3, 10), meas("2", "P", 2, 3, 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Distance != 0 {
		t.Errorf("expected distance 0, got %v", d.Distance)
	}
	if d.AzimuthDeg != 0 {
		t.Errorf("expected azimuth 0 by convention, got %v", d.AzimuthDeg)
	}
	if d.DeltaZ != -3 {
		t.Errorf("expected delta_z -3 (subsided), got %v", d.DeltaZ)
	}
}

func TestCompareCrossPoint(t *testing.T) {
	_, err := Compare(meas("1", "A", 0, 0, 0), meas("2", "B", 1, 1, 1))
	var cp *CrossPointError
	if !errors.As(err, &cp) {
		t.Fatalf("expected CrossPointError, got %v", err)
	}
	if cp.A != "A" || cp.B != "B" {
		t.Errorf("unexpected error detail: %+v", cp)
	}
}
