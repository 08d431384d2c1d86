// file: internals/features/grades/scores/model/monthly_grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyGradeModel represents the monthly_grades table. One row per
// (student, course, month 1-3); three Quran components score 0-5 each and
// tajweed theory scores 0-15.
type MonthlyGradeModel struct {
	// PK
	MonthlyGradeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:monthly_grade_id" json:"monthly_grade_id"`

	// Composite upsert key
	MonthlyGradeStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_monthly_grades_student_course_month;column:monthly_grade_student_id" json:"monthly_grade_student_id"`
	MonthlyGradeCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_monthly_grades_student_course_month;index;column:monthly_grade_course_id" json:"monthly_grade_course_id"`
	MonthlyGradeMonth     int       `gorm:"not null;uniqueIndex:uq_monthly_grades_student_course_month;column:monthly_grade_month" json:"monthly_grade_month"`

	MonthlyGradeQuranForgetfulness float64 `gorm:"type:numeric(4,2);not null;default:0;column:monthly_grade_quran_forgetfulness" json:"monthly_grade_quran_forgetfulness"`
	MonthlyGradeQuranMajorMistakes float64 `gorm:"type:numeric(4,2);not null;default:0;column:monthly_grade_quran_major_mistakes" json:"monthly_grade_quran_major_mistakes"`
	MonthlyGradeQuranMinorMistakes float64 `gorm:"type:numeric(4,2);not null;default:0;column:monthly_grade_quran_minor_mistakes" json:"monthly_grade_quran_minor_mistakes"`
	MonthlyGradeTajweedTheory      float64 `gorm:"type:numeric(4,2);not null;default:0;column:monthly_grade_tajweed_theory" json:"monthly_grade_tajweed_theory"`

	// Audit
	MonthlyGradeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:monthly_grade_created_at" json:"monthly_grade_created_at"`
	MonthlyGradeUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:monthly_grade_updated_at" json:"monthly_grade_updated_at"`
}

func (MonthlyGradeModel) TableName() string { return "monthly_grades" }
