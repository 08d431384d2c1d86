// file: internals/features/academics/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfizku_backend/internals/features/academics/enrollments/model"
)

/* ================== REQUESTS ================== */

type EnrollStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
}

type SubmitEnrollmentRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
	Note     *string   `json:"note" validate:"omitempty,max=500"`
}

type ResolveEnrollmentRequest struct {
	Action string  `json:"action" validate:"required,oneof=accept reject"`
	Note   *string `json:"note" validate:"omitempty,max=500"`
}

/* ================== RESPONSES ================== */

type EnrollmentResponse struct {
	EnrollmentID         uuid.UUID `json:"enrollment_id"`
	EnrollmentStudentID  uuid.UUID `json:"enrollment_student_id"`
	EnrollmentCourseID   uuid.UUID `json:"enrollment_course_id"`
	EnrollmentIsActive   bool      `json:"enrollment_is_active"`
	EnrollmentEnrolledAt time.Time `json:"enrollment_enrolled_at"`
}

func FromEnrollmentModel(m model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:         m.EnrollmentID,
		EnrollmentStudentID:  m.EnrollmentStudentID,
		EnrollmentCourseID:   m.EnrollmentCourseID,
		EnrollmentIsActive:   m.EnrollmentIsActive,
		EnrollmentEnrolledAt: m.EnrollmentEnrolledAt,
	}
}

func FromEnrollmentModels(rows []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromEnrollmentModel(r))
	}
	return out
}

// RosterEntry is one row of a course roster view.
type RosterEntry struct {
	StudentID     uuid.UUID `json:"student_id"`
	StudentNumber int64     `json:"student_number"`
	StudentName   string    `json:"student_name"`
	EnrolledAt    time.Time `json:"enrolled_at"`
}

type EnrollmentRequestResponse struct {
	RequestID         uuid.UUID  `json:"request_id"`
	RequestStudentID  uuid.UUID  `json:"request_student_id"`
	RequestCourseID   uuid.UUID  `json:"request_course_id"`
	RequestStatus     string     `json:"request_status"`
	RequestNote       *string    `json:"request_note,omitempty"`
	RequestResolvedBy *uuid.UUID `json:"request_resolved_by,omitempty"`
	RequestResolvedAt *time.Time `json:"request_resolved_at,omitempty"`
	RequestCreatedAt  time.Time  `json:"request_created_at"`
}

func FromRequestModel(m model.EnrollmentRequestModel) EnrollmentRequestResponse {
	return EnrollmentRequestResponse{
		RequestID:         m.RequestID,
		RequestStudentID:  m.RequestStudentID,
		RequestCourseID:   m.RequestCourseID,
		RequestStatus:     m.RequestStatus,
		RequestNote:       m.RequestNote,
		RequestResolvedBy: m.RequestResolvedBy,
		RequestResolvedAt: m.RequestResolvedAt,
		RequestCreatedAt:  m.RequestCreatedAt,
	}
}

func FromRequestModels(rows []model.EnrollmentRequestModel) []EnrollmentRequestResponse {
	out := make([]EnrollmentRequestResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRequestModel(r))
	}
	return out
}
