// file: internals/features/users/student/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel represents the students table.
// A profile may pre-exist before an account is linked, so StudentUserID is
// nullable; student_number is assigned once by the sequence and never changes.
type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Sequential, unique, stable once assigned
	StudentNumber int64 `gorm:"column:student_number;autoIncrement;uniqueIndex:uq_students_number" json:"student_number"`

	StudentName string `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`

	// Contact info (phone, guardian, address) as JSONB
	StudentContact datatypes.JSONMap `gorm:"type:jsonb;column:student_contact" json:"student_contact,omitempty"`

	// Optional one-to-one link to a user account
	StudentUserID *uuid.UUID `gorm:"type:uuid;column:student_user_id;uniqueIndex:uq_students_user" json:"student_user_id,omitempty"`

	StudentIsActive  bool           `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
