// file: internals/features/grades/daily_task/model/daily_task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyTaskModel represents the daily_tasks table: the student's own daily
// memorization checklist, one row per (student, course, date).
type DailyTaskModel struct {
	// PK
	DailyTaskID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:daily_task_id" json:"daily_task_id"`

	// Composite upsert key
	DailyTaskStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_daily_tasks_student_course_date;column:daily_task_student_id" json:"daily_task_student_id"`
	DailyTaskCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_daily_tasks_student_course_date;index;column:daily_task_course_id" json:"daily_task_course_id"`
	DailyTaskDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_daily_tasks_student_course_date;column:daily_task_date" json:"daily_task_date"`

	DailyTaskListenedFive  bool    `gorm:"not null;default:false;column:daily_task_listened_five" json:"daily_task_listened_five"`
	DailyTaskRepeatedTen   bool    `gorm:"not null;default:false;column:daily_task_repeated_ten" json:"daily_task_repeated_ten"`
	DailyTaskRecitedToPeer bool    `gorm:"not null;default:false;column:daily_task_recited_to_peer" json:"daily_task_recited_to_peer"`
	DailyTaskNotes         *string `gorm:"type:text;column:daily_task_notes" json:"daily_task_notes,omitempty"`

	// Audit
	DailyTaskCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:daily_task_created_at" json:"daily_task_created_at"`
	DailyTaskUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:daily_task_updated_at" json:"daily_task_updated_at"`
}

func (DailyTaskModel) TableName() string { return "daily_tasks" }
