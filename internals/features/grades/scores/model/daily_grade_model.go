// file: internals/features/grades/scores/model/daily_grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyGradeModel represents the daily_grades table. One row per
// (student, course, calendar date); memorization and review each score 0-5.
type DailyGradeModel struct {
	// PK
	DailyGradeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:daily_grade_id" json:"daily_grade_id"`

	// Composite upsert key
	DailyGradeStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_daily_grades_student_course_date;column:daily_grade_student_id" json:"daily_grade_student_id"`
	DailyGradeCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_daily_grades_student_course_date;index;column:daily_grade_course_id" json:"daily_grade_course_id"`
	DailyGradeDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_daily_grades_student_course_date;column:daily_grade_date" json:"daily_grade_date"`

	DailyGradeMemorization float64 `gorm:"type:numeric(4,2);not null;default:0;column:daily_grade_memorization" json:"daily_grade_memorization"`
	DailyGradeReview       float64 `gorm:"type:numeric(4,2);not null;default:0;column:daily_grade_review" json:"daily_grade_review"`
	DailyGradeNotes        *string `gorm:"type:text;column:daily_grade_notes" json:"daily_grade_notes,omitempty"`

	// Audit
	DailyGradeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:daily_grade_created_at" json:"daily_grade_created_at"`
	DailyGradeUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:daily_grade_updated_at" json:"daily_grade_updated_at"`
}

func (DailyGradeModel) TableName() string { return "daily_grades" }
