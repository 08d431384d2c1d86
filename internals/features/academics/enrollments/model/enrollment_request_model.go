// file: internals/features/academics/enrollments/model/enrollment_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment request statuses.
const (
	RequestStatusPending  = "PENDING"
	RequestStatusAccepted = "ACCEPTED"
	RequestStatusRejected = "REJECTED"
)

// EnrollmentRequestModel represents the enrollment_requests table. A
// student/course pair has at most one request; a rejected request is reopened
// (back to PENDING) when the student applies again.
type EnrollmentRequestModel struct {
	// PK
	RequestID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:request_id" json:"request_id"`

	// FKs (one row per pair)
	RequestStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_requests_student_course;column:request_student_id" json:"request_student_id"`
	RequestCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_requests_student_course;index;column:request_course_id" json:"request_course_id"`

	RequestStatus string  `gorm:"type:varchar(10);not null;default:'PENDING';column:request_status" json:"request_status"`
	RequestNote   *string `gorm:"type:text;column:request_note" json:"request_note,omitempty"`

	// Who resolved it, when it went ACCEPTED/REJECTED.
	RequestResolvedBy *uuid.UUID `gorm:"type:uuid;column:request_resolved_by" json:"request_resolved_by,omitempty"`
	RequestResolvedAt *time.Time `gorm:"type:timestamptz;column:request_resolved_at" json:"request_resolved_at,omitempty"`

	// Audit
	RequestCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:request_created_at" json:"request_created_at"`
	RequestUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:request_updated_at" json:"request_updated_at"`
	RequestDeletedAt gorm.DeletedAt `gorm:"column:request_deleted_at;index" json:"request_deleted_at,omitempty"`
}

func (EnrollmentRequestModel) TableName() string { return "enrollment_requests" }

func (m *EnrollmentRequestModel) IsPending() bool { return m.RequestStatus == RequestStatusPending }
