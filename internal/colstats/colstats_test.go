package colstats

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	s := Describe([]float64{4, 1, 3, 2})

	if s.N != 4 {
		t.Errorf("N = %d, want 4", s.N)
	}
	if s.Mean != 2.5 {
		t.Errorf("Mean = %v, want 2.5", s.Mean)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("Min/Max = %v/%v, want 1/4", s.Min, s.Max)
	}
	// Sample standard deviation of 1..4 is sqrt(5/3).
	if want := math.Sqrt(5.0 / 3.0); math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", s.StdDev, want)
	}
	// Empirical quantiles pick the smallest value whose CDF reaches p.
	if s.P25 != 1 || s.Median != 2 || s.P75 != 3 {
		t.Errorf("quantiles = %v/%v/%v, want 1/2/3", s.P25, s.Median, s.P75)
	}
}

func TestDescribe_Empty(t *testing.T) {
	s := Describe(nil)
	if s.N != 0 || s.Mean != 0 || s.Min != 0 || s.Max != 0 {
		t.Errorf("Describe(nil) = %+v, want zero Summary", s)
	}
}

func TestDescribe_SingleValue(t *testing.T) {
	s := Describe([]float64{7})
	if s.N != 1 || s.Mean != 7 || s.Min != 7 || s.Max != 7 || s.Median != 7 {
		t.Errorf("Describe([7]) = %+v", s)
	}
	if !math.IsNaN(s.StdDev) {
		t.Errorf("StdDev of one value = %v, want NaN", s.StdDev)
	}
}

func TestDescribe_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Describe(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}
