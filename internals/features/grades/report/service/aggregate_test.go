// file: internals/features/grades/report/service/aggregate_test.go
package service

import "testing"

func TestAggregatePerfectStudent(t *testing.T) {
	// 70 days x 10 pts, 10 weeks x 5, 3 months x 30, 70 days x 1, 40+20.
	got := Aggregate(RawSums{
		Daily:    700,
		Weekly:   50,
		Monthly:  90,
		Behavior: 70,
		Final:    60,
	})

	if got.Daily != 50 || got.Weekly != 50 || got.Monthly != 30 || got.Behavior != 10 || got.Final != 60 {
		t.Fatalf("unexpected component breakdown: %+v", got)
	}
	if got.Total != 200 {
		t.Fatalf("total = %v, want 200", got.Total)
	}
	if got.Percentage != 100 {
		t.Fatalf("percentage = %v, want 100", got.Percentage)
	}
}

func TestAggregateZeroDataYieldsZeroNotNaN(t *testing.T) {
	got := Aggregate(RawSums{})

	if got.Total != 0 {
		t.Fatalf("total = %v, want 0", got.Total)
	}
	if got.Percentage != 0 {
		t.Fatalf("percentage = %v, want 0", got.Percentage)
	}
	// NaN != NaN, so an explicit self-comparison catches divide-by-zero bugs.
	if got.Percentage != got.Percentage {
		t.Fatal("percentage is NaN")
	}
}

func TestAggregateIdempotent(t *testing.T) {
	raw := RawSums{Daily: 333.5, Weekly: 21, Monthly: 47.25, Behavior: 33.5, Final: 41}

	first := Aggregate(raw)
	second := Aggregate(raw)

	if first != second {
		t.Fatalf("same input produced different output: %+v vs %+v", first, second)
	}
}

func TestAggregateDailyLinearity(t *testing.T) {
	base := Aggregate(RawSums{Daily: 140})
	doubled := Aggregate(RawSums{Daily: 280})

	if doubled.Daily != 2*base.Daily {
		t.Fatalf("daily component not linear: %v vs 2x%v", doubled.Daily, base.Daily)
	}
}

func TestAggregatePartialDataIsNotRescaled(t *testing.T) {
	// Half the daily rows means half the daily component; divisors never
	// adapt to row counts.
	got := Aggregate(RawSums{Daily: 350})

	if got.Daily != 25 {
		t.Fatalf("daily = %v, want 25", got.Daily)
	}
	if got.Percentage != 12.5 {
		t.Fatalf("percentage = %v, want 12.5", got.Percentage)
	}
}

func TestAggregateDivisorTable(t *testing.T) {
	cases := []struct {
		name string
		raw  RawSums
		want Components
	}{
		{"daily only", RawSums{Daily: 14}, Components{Daily: 1, Total: 1, Percentage: 0.5}},
		{"weekly passes through", RawSums{Weekly: 50}, Components{Weekly: 50, Total: 50, Percentage: 25}},
		{"monthly divided by three", RawSums{Monthly: 90}, Components{Monthly: 30, Total: 30, Percentage: 15}},
		{"behavior divided by seven", RawSums{Behavior: 70}, Components{Behavior: 10, Total: 10, Percentage: 5}},
		{"final passes through", RawSums{Final: 60}, Components{Final: 60, Total: 60, Percentage: 30}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Aggregate(tc.raw); got != tc.want {
				t.Fatalf("Aggregate(%+v) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestAggregateOverRangeDataPassesThrough(t *testing.T) {
	// The engine does not clamp; bad stored data shows up as >100%.
	got := Aggregate(RawSums{Daily: 1400})

	if got.Daily != 100 {
		t.Fatalf("daily = %v, want 100", got.Daily)
	}
	if got.Percentage != 50 {
		t.Fatalf("percentage = %v, want 50", got.Percentage)
	}
}
