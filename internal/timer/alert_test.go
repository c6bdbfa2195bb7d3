package timer

import "testing"

func TestShouldFire(t *testing.T) {
	tests := []struct {
		name    string
		elapsed int
		period  int
		want    bool
	}{
		{"start instant", 0, 60, false},
		{"before first period", 59, 60, false},
		{"first period", 60, 60, true},
		{"between periods", 61, 60, false},
		{"second period", 120, 60, true},
		{"period one", 7, 1, true},
		{"zero period", 60, 0, false},
		{"negative period", 60, -60, false},
		{"negative elapsed", -60, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldFire(tt.elapsed, tt.period); got != tt.want {
				t.Errorf("ShouldFire(%d, %d) = %v, want %v", tt.elapsed, tt.period, got, tt.want)
			}
		})
	}
}

func TestShouldFire_NonPositivePeriodNeverFires(t *testing.T) {
	for _, period := range []int{0, -1, -30} {
		for elapsed := 0; elapsed <= 1000; elapsed++ {
			if ShouldFire(elapsed, period) {
				t.Fatalf("ShouldFire(%d, %d) = true, want false", elapsed, period)
			}
		}
	}
}
