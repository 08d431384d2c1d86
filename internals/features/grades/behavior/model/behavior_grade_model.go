// file: internals/features/grades/behavior/model/behavior_grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// BehaviorGradeModel represents the behavior_grades table. One row per
// (student, course, calendar date); the daily score is a 0-1 fraction.
type BehaviorGradeModel struct {
	// PK
	BehaviorGradeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:behavior_grade_id" json:"behavior_grade_id"`

	// Composite upsert key
	BehaviorGradeStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_behavior_grades_student_course_date;column:behavior_grade_student_id" json:"behavior_grade_student_id"`
	BehaviorGradeCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_behavior_grades_student_course_date;index;column:behavior_grade_course_id" json:"behavior_grade_course_id"`
	BehaviorGradeDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_behavior_grades_student_course_date;column:behavior_grade_date" json:"behavior_grade_date"`

	BehaviorGradeDailyScore float64 `gorm:"type:numeric(3,2);not null;default:0;column:behavior_grade_daily_score" json:"behavior_grade_daily_score"`
	BehaviorGradeNotes      *string `gorm:"type:text;column:behavior_grade_notes" json:"behavior_grade_notes,omitempty"`

	// Audit
	BehaviorGradeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:behavior_grade_created_at" json:"behavior_grade_created_at"`
	BehaviorGradeUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:behavior_grade_updated_at" json:"behavior_grade_updated_at"`
}

func (BehaviorGradeModel) TableName() string { return "behavior_grades" }
