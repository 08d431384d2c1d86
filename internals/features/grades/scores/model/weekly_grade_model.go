// file: internals/features/grades/scores/model/weekly_grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyGradeModel represents the weekly_grades table. One row per
// (student, course, week 1-10); grade scores 0-5.
type WeeklyGradeModel struct {
	// PK
	WeeklyGradeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:weekly_grade_id" json:"weekly_grade_id"`

	// Composite upsert key
	WeeklyGradeStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_weekly_grades_student_course_week;column:weekly_grade_student_id" json:"weekly_grade_student_id"`
	WeeklyGradeCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_weekly_grades_student_course_week;index;column:weekly_grade_course_id" json:"weekly_grade_course_id"`
	WeeklyGradeWeek      int       `gorm:"not null;uniqueIndex:uq_weekly_grades_student_course_week;column:weekly_grade_week" json:"weekly_grade_week"`

	WeeklyGradeValue float64 `gorm:"type:numeric(4,2);not null;default:0;column:weekly_grade_value" json:"weekly_grade_value"`
	WeeklyGradeNotes *string `gorm:"type:text;column:weekly_grade_notes" json:"weekly_grade_notes,omitempty"`

	// Audit
	WeeklyGradeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:weekly_grade_created_at" json:"weekly_grade_created_at"`
	WeeklyGradeUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:weekly_grade_updated_at" json:"weekly_grade_updated_at"`
}

func (WeeklyGradeModel) TableName() string { return "weekly_grades" }
