// file: internals/features/grades/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfizku_backend/internals/features/grades/attendance/model"
)

/* ================== REQUESTS ================== */

type UpsertAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=PRESENT EXCUSED ABSENT REVIEWED LEFT_EARLY"`
	Notes     *string   `json:"notes" validate:"omitempty,max=500"`
}

// BulkAttendanceRequest saves one day's attendance for a whole class in a
// single all-or-nothing transaction.
type BulkAttendanceRequest struct {
	CourseID uuid.UUID             `json:"course_id" validate:"required"`
	Date     time.Time             `json:"date" validate:"required"`
	Records  []BulkAttendanceEntry `json:"records" validate:"required,min=1,max=200,dive"`
}

type BulkAttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=PRESENT EXCUSED ABSENT REVIEWED LEFT_EARLY"`
	Notes     *string   `json:"notes" validate:"omitempty,max=500"`
}

/* ================== RESPONSES ================== */

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id"`
	AttendanceCourseID  uuid.UUID `json:"attendance_course_id"`
	AttendanceDate      time.Time `json:"attendance_date"`
	AttendanceStatus    string    `json:"attendance_status"`
	AttendanceNotes     *string   `json:"attendance_notes,omitempty"`
	AttendanceUpdatedAt time.Time `json:"attendance_updated_at"`
}

func FromAttendanceModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceCourseID:  m.AttendanceCourseID,
		AttendanceDate:      m.AttendanceDate,
		AttendanceStatus:    m.AttendanceStatus,
		AttendanceNotes:     m.AttendanceNotes,
		AttendanceUpdatedAt: m.AttendanceUpdatedAt,
	}
}

func FromAttendanceModels(rows []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromAttendanceModel(r))
	}
	return out
}
