package units

import (
	"math"
	"testing"
)

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		from, to string
		want     float64
	}{
		{"kelvin to celsius", 293.15, "K", "degC", 20},
		{"celsius to kelvin", 0, "degC", "K", 273.15},
		{"fahrenheit to celsius", 212, "degF", "degC", 100},
		{"pascal to decibar", 1e4, "Pa", "dbar", 1},
		{"hectopascal to pascal", 850, "hPa", "Pa", 85000},
		{"bar to decibar", 1, "bar", "dbar", 10},
		{"kilometers to meters", 1.5, "km", "m", 1500},
		{"kg/kg to g/kg salinity", 0.035, "kg/kg", "g/kg", 35},
		{"g/kg humidity to kg/kg", 0.5, "g/kg", "kg/kg", 5e-4},
		{"unity label to kg/kg", 0.01, "1", "kg/kg", 0.01},
		{"radians to degrees", math.Pi, "radians", "degree", 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertValue(tt.v, tt.from, tt.to)
			if err != nil {
				t.Fatalf("ConvertValue: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ConvertValue(%g, %q, %q) = %g, want %g", tt.v, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := ConvertValue(1, "furlongs", "m"); err == nil {
		t.Error("unknown unit must error, not pass through")
	}
	if _, err := ConvertValue(1, "degC", "dbar"); err == nil {
		t.Error("cross-dimension conversion must error")
	}
}

func TestConvertSlice(t *testing.T) {
	in := []float64{273.15, 283.15, 293.15}
	out, err := Convert(in, "K", "degC")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := []float64{0, 10, 20}
	for i, w := range want {
		if math.Abs(out[i]-w) > 1e-9 {
			t.Errorf("index %d: %g, want %g", i, out[i], w)
		}
	}
	// The input is never modified.
	if in[0] != 273.15 {
		t.Errorf("input mutated: %g", in[0])
	}
}

func TestConvertEmptyUnitIsIdentity(t *testing.T) {
	// An empty source unit means the caller already supplies the assumed
	// convention.
	out, err := Convert([]float64{42}, "", "dbar")
	if err != nil || out[0] != 42 {
		t.Errorf("Convert with empty unit = (%v, %v), want identity", out, err)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"degC", "K"}, {"dbar", "Pa"}, {"m", "km"}, {"g/kg", "kg/kg"},
	}
	for _, pair := range pairs {
		for _, v := range []float64{-5, 0, 3.25, 1000} {
			mid, err := ConvertValue(v, pair[0], pair[1])
			if err != nil {
				t.Fatalf("%v: %v", pair, err)
			}
			back, err := ConvertValue(mid, pair[1], pair[0])
			if err != nil {
				t.Fatalf("%v: %v", pair, err)
			}
			if math.Abs(back-v) > 1e-9*math.Max(math.Abs(v), 1) {
				t.Errorf("%v round trip of %g returned %g", pair, v, back)
			}
		}
	}
}
