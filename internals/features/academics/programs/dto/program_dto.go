// file: internals/features/academics/programs/dto/program_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfizku_backend/internals/features/academics/programs/model"
)

/* ================== REQUESTS ================== */

type CreateProgramRequest struct {
	ProgramName        string  `json:"program_name" validate:"required,min=3,max=120"`
	ProgramDescription *string `json:"program_description" validate:"omitempty,max=2000"`
}

type UpdateProgramRequest struct {
	ProgramName        *string `json:"program_name" validate:"omitempty,min=3,max=120"`
	ProgramDescription *string `json:"program_description" validate:"omitempty,max=2000"`
	ProgramIsActive    *bool   `json:"program_is_active" validate:"omitempty"`
}

/* ================== RESPONSES ================== */

type ProgramResponse struct {
	ProgramID          uuid.UUID `json:"program_id"`
	ProgramName        string    `json:"program_name"`
	ProgramDescription *string   `json:"program_description,omitempty"`
	ProgramIsActive    bool      `json:"program_is_active"`
	ProgramCreatedAt   time.Time `json:"program_created_at"`
	ProgramUpdatedAt   time.Time `json:"program_updated_at"`
}

func FromProgramModel(m model.ProgramModel) ProgramResponse {
	return ProgramResponse{
		ProgramID:          m.ProgramID,
		ProgramName:        m.ProgramName,
		ProgramDescription: m.ProgramDescription,
		ProgramIsActive:    m.ProgramIsActive,
		ProgramCreatedAt:   m.ProgramCreatedAt,
		ProgramUpdatedAt:   m.ProgramUpdatedAt,
	}
}

func FromProgramModels(rows []model.ProgramModel) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromProgramModel(r))
	}
	return out
}
