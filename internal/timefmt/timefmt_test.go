package timefmt

import "testing"

func TestClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{30, "0:30"},
		{61, "1:01"},
		{599.5, "9:59.5"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{3971.24, "1:06:11.24"},
		{7278.422, "2:01:18.422"},
		{12.500, "0:12.5"},
		{12.040, "0:12.04"},
		{-3, "0:00"},
		{3599.9996, "1:00:00"},
	}

	for _, tt := range tests {
		if got := Clock(tt.seconds); got != tt.want {
			t.Errorf("Clock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
