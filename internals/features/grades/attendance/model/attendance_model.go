// file: internals/features/grades/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Attendance statuses.
const (
	StatusPresent   = "PRESENT"
	StatusExcused   = "EXCUSED"
	StatusAbsent    = "ABSENT"
	StatusReviewed  = "REVIEWED"
	StatusLeftEarly = "LEFT_EARLY"
)

// AttendanceModel represents the attendances table. One row per
// (student, course, calendar date); writes upsert on that key.
type AttendanceModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	// Composite upsert key
	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_student_course_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_student_course_date;index;column:attendance_course_id" json:"attendance_course_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendances_student_course_date;column:attendance_date" json:"attendance_date"`

	AttendanceStatus string  `gorm:"type:varchar(12);not null;column:attendance_status" json:"attendance_status"`
	AttendanceNotes  *string `gorm:"type:text;column:attendance_notes" json:"attendance_notes,omitempty"`

	// Audit
	AttendanceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_updated_at" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
