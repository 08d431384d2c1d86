// file: internals/features/academics/programs/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramModel represents the programs table. A program owns its courses.
type ProgramModel struct {
	// PK
	ProgramID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_id" json:"program_id"`

	ProgramName        string  `gorm:"type:varchar(120);not null;uniqueIndex:uq_programs_name;column:program_name" json:"program_name"`
	ProgramDescription *string `gorm:"type:text;column:program_description" json:"program_description,omitempty"`

	// Status & audit
	ProgramIsActive  bool           `gorm:"not null;default:true;column:program_is_active" json:"program_is_active"`
	ProgramCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:program_created_at" json:"program_created_at"`
	ProgramUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:program_updated_at" json:"program_updated_at"`
	ProgramDeletedAt gorm.DeletedAt `gorm:"column:program_deleted_at;index" json:"program_deleted_at,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }
