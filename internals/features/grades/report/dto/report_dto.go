// file: internals/features/grades/report/dto/report_dto.go
package dto

import (
	"math"

	"github.com/google/uuid"

	"tahfizku_backend/internals/features/grades/report/service"
)

// StudentReportResponse is the presentation shape of one aggregation run.
// Rounding to two decimals happens here, never inside the engine.
type StudentReportResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	CourseID  uuid.UUID `json:"course_id"`

	Raw struct {
		Daily    float64 `json:"daily"`
		Weekly   float64 `json:"weekly"`
		Monthly  float64 `json:"monthly"`
		Behavior float64 `json:"behavior"`
		Final    float64 `json:"final"`
	} `json:"raw"`

	Normalized struct {
		Daily    float64 `json:"daily"`
		Weekly   float64 `json:"weekly"`
		Monthly  float64 `json:"monthly"`
		Behavior float64 `json:"behavior"`
		Final    float64 `json:"final"`
	} `json:"normalized"`

	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

func NewStudentReport(studentID, courseID uuid.UUID, raw service.RawSums, comp service.Components) StudentReportResponse {
	var out StudentReportResponse
	out.StudentID = studentID
	out.CourseID = courseID

	out.Raw.Daily = raw.Daily
	out.Raw.Weekly = raw.Weekly
	out.Raw.Monthly = raw.Monthly
	out.Raw.Behavior = raw.Behavior
	out.Raw.Final = raw.Final

	out.Normalized.Daily = round2(comp.Daily)
	out.Normalized.Weekly = round2(comp.Weekly)
	out.Normalized.Monthly = round2(comp.Monthly)
	out.Normalized.Behavior = round2(comp.Behavior)
	out.Normalized.Final = round2(comp.Final)

	out.Total = round2(comp.Total)
	out.Percentage = round2(comp.Percentage)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
