// file: internals/features/academics/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel represents the enrollments table. A student/course pair has
// at most one row; deactivation keeps the row so a later re-enroll reactivates
// it instead of inserting a duplicate.
type EnrollmentModel struct {
	// PK
	EnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`

	// FKs (one row per pair)
	EnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_course;column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_course;index;column:enrollment_course_id" json:"enrollment_course_id"`

	EnrollmentIsActive   bool      `gorm:"not null;default:true;column:enrollment_is_active" json:"enrollment_is_active"`
	EnrollmentEnrolledAt time.Time `gorm:"type:timestamptz;not null;default:now();column:enrollment_enrolled_at" json:"enrollment_enrolled_at"`

	// Audit
	EnrollmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:enrollment_created_at" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:enrollment_updated_at" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"enrollment_deleted_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
