// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CourseModel represents the courses table. Each course belongs to a program
// and is taught by at most one teacher at a time.
type CourseModel struct {
	// PK
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	// FKs
	CourseProgramID uuid.UUID  `gorm:"type:uuid;not null;index;column:course_program_id" json:"course_program_id"`
	CourseTeacherID *uuid.UUID `gorm:"type:uuid;index;column:course_teacher_id" json:"course_teacher_id,omitempty"`

	CourseName        string  `gorm:"type:varchar(120);not null;column:course_name" json:"course_name"`
	CourseDescription *string `gorm:"type:text;column:course_description" json:"course_description,omitempty"`
	CourseLevel       string  `gorm:"type:varchar(50);not null;default:'beginner';column:course_level" json:"course_level"`

	// Capacity limit for active enrollments; 0 means unlimited.
	CourseMaxStudents int `gorm:"not null;default:0;column:course_max_students" json:"course_max_students"`

	// Weekday names the course meets on, e.g. {monday,wednesday}.
	CourseScheduleDays pq.StringArray `gorm:"type:text[];column:course_schedule_days" json:"course_schedule_days,omitempty"`

	// Status & audit
	CourseIsActive  bool           `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`
	CourseCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:course_updated_at" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

// IsOwnedBy reports whether the course is assigned to the given teacher.
// A course with no teacher is owned by nobody.
func (m *CourseModel) IsOwnedBy(userID uuid.UUID) bool {
	return m.CourseTeacherID != nil && *m.CourseTeacherID == userID
}
