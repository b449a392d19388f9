package store

import "testing"

func TestRange_Contains(t *testing.T) {
	r := Range[int32]{Min: -10, Max: 10}

	testCases := []struct {
		v    int32
		want bool
	}{
		{-11, false},
		{-10, true},
		{0, true},
		{10, true},
		{11, false},
	}

	for _, tc := range testCases {
		if got := r.Contains(tc.v); got != tc.want {
			t.Errorf("Contains(%d): got %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestRange_Clip(t *testing.T) {
	r := Range[int64]{Min: 50, Max: 9600}

	testCases := []struct {
		v    int64
		want int64
	}{
		{0, 50},
		{50, 50},
		{1200, 1200},
		{9600, 9600},
		{100_000, 9600},
	}

	for _, tc := range testCases {
		if got := r.Clip(tc.v); got != tc.want {
			t.Errorf("Clip(%d): got %d, want %d", tc.v, got, tc.want)
		}
	}
}
