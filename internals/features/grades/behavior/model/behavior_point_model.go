// file: internals/features/grades/behavior/model/behavior_point_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// BehaviorPointModel represents the behavior_points table: four daily
// merit flags per (student, course, date). Kept separate from the
// continuous behavior score; these flags do not feed the report formula.
type BehaviorPointModel struct {
	// PK
	BehaviorPointID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:behavior_point_id" json:"behavior_point_id"`

	// Composite upsert key
	BehaviorPointStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_behavior_points_student_course_date;column:behavior_point_student_id" json:"behavior_point_student_id"`
	BehaviorPointCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_behavior_points_student_course_date;index;column:behavior_point_course_id" json:"behavior_point_course_id"`
	BehaviorPointDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_behavior_points_student_course_date;column:behavior_point_date" json:"behavior_point_date"`

	BehaviorPointEarlyAttendance     bool `gorm:"not null;default:false;column:behavior_point_early_attendance" json:"behavior_point_early_attendance"`
	BehaviorPointPerfectMemorization bool `gorm:"not null;default:false;column:behavior_point_perfect_memorization" json:"behavior_point_perfect_memorization"`
	BehaviorPointActiveParticipation bool `gorm:"not null;default:false;column:behavior_point_active_participation" json:"behavior_point_active_participation"`
	BehaviorPointTimeCommitment      bool `gorm:"not null;default:false;column:behavior_point_time_commitment" json:"behavior_point_time_commitment"`

	// Audit
	BehaviorPointCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:behavior_point_created_at" json:"behavior_point_created_at"`
	BehaviorPointUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:behavior_point_updated_at" json:"behavior_point_updated_at"`
}

func (BehaviorPointModel) TableName() string { return "behavior_points" }
