package reservation

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2023, 10, 23, hour, min, 0, 0, time.UTC)
}

func TestPriceWholeHours(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"uma hora", at(14, 0), at(15, 0), 10},
		{"duas horas", at(16, 0), at(18, 0), 20},
		{"hora quebrada arredonda para baixo", at(14, 0), at(15, 30), 10},
		{"menos de uma hora cobra piso zero vezes tarifa", at(14, 0), at(14, 30), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Price(tc.start, tc.end); got != tc.want {
				t.Fatalf("Price(%v, %v) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestPriceZeroDurationDefaultsToMinimumFee(t *testing.T) {
	if got := Price(at(14, 0), at(14, 0)); got != MinimumFee {
		t.Fatalf("Price com duração zero = %d, want %d", got, MinimumFee)
	}
}

func TestPriceNegativeDurationDefaultsToMinimumFee(t *testing.T) {
	if got := Price(at(16, 0), at(14, 0)); got != MinimumFee {
		t.Fatalf("Price com duração negativa = %d, want %d", got, MinimumFee)
	}
}

func TestPriceMonotonicOnWholeHours(t *testing.T) {
	prev := 0
	for hours := 1; hours <= 8; hours++ {
		got := Price(at(8, 0), at(8, 0).Add(time.Duration(hours)*time.Hour))
		if got < prev {
			t.Fatalf("preço caiu de %d para %d em %d horas", prev, got, hours)
		}
		prev = got
	}
}
