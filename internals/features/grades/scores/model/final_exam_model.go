// file: internals/features/grades/scores/model/final_exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// FinalExamModel represents the final_exams table. At most one row per
// (student, course); Quran test scores 0-40 and tajweed test 0-20.
type FinalExamModel struct {
	// PK
	FinalExamID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:final_exam_id" json:"final_exam_id"`

	// Composite upsert key
	FinalExamStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_final_exams_student_course;column:final_exam_student_id" json:"final_exam_student_id"`
	FinalExamCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_final_exams_student_course;index;column:final_exam_course_id" json:"final_exam_course_id"`

	FinalExamQuranTest   float64 `gorm:"type:numeric(5,2);not null;default:0;column:final_exam_quran_test" json:"final_exam_quran_test"`
	FinalExamTajweedTest float64 `gorm:"type:numeric(5,2);not null;default:0;column:final_exam_tajweed_test" json:"final_exam_tajweed_test"`

	// Audit
	FinalExamCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:final_exam_created_at" json:"final_exam_created_at"`
	FinalExamUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:final_exam_updated_at" json:"final_exam_updated_at"`
}

func (FinalExamModel) TableName() string { return "final_exams" }
