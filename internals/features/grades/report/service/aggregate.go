// file: internals/features/grades/report/service/aggregate.go
package service

// Fixed weighting policy. Divisors are constants of the grading scheme and
// are never derived from how many rows a student actually has: a student
// with fewer recorded days simply scores lower.
const (
	DailyDivisor    = 14.0 // raw max 700 -> 50
	WeeklyDivisor   = 1.0  // raw max 50, already on scale
	MonthlyDivisor  = 3.0  // raw max 90 -> 30
	BehaviorDivisor = 7.0  // raw max 70 -> 10
	FinalDivisor    = 1.0  // raw max 60, already on scale

	TotalMax = 200.0
)

// RawSums carries the per-category raw sums for one (student, course) pair.
type RawSums struct {
	Daily    float64 // sum of memorization+review over all daily rows
	Weekly   float64 // sum of grade over all weekly rows
	Monthly  float64 // sum of the four sub-components over all monthly rows
	Behavior float64 // sum of dailyScore over all behavior rows
	Final    float64 // quranTest+tajweedTest of the single final-exam row
}

// Components is the normalized breakdown plus the combined result.
type Components struct {
	Daily    float64 `json:"daily"`
	Weekly   float64 `json:"weekly"`
	Monthly  float64 `json:"monthly"`
	Behavior float64 `json:"behavior"`
	Final    float64 `json:"final"`

	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Aggregate converts raw sums into the normalized 0-200 total and its
// percentage. Pure function: no rounding, no clamping, no hidden state.
// Out-of-range inputs pass through; bounds are enforced at the write
// boundary, and a total above 200 signals bad stored data.
func Aggregate(raw RawSums) Components {
	out := Components{
		Daily:    raw.Daily / DailyDivisor,
		Weekly:   raw.Weekly / WeeklyDivisor,
		Monthly:  raw.Monthly / MonthlyDivisor,
		Behavior: raw.Behavior / BehaviorDivisor,
		Final:    raw.Final / FinalDivisor,
	}
	out.Total = out.Daily + out.Weekly + out.Monthly + out.Behavior + out.Final
	out.Percentage = out.Total / TotalMax * 100
	return out
}
