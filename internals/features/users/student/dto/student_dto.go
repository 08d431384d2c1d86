// file: internals/features/users/student/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "tahfizku_backend/internals/features/users/student/model"
)

// ===== Requests =====

type CreateStudentRequest struct {
	StudentName    string            `json:"student_name" validate:"required,min=3,max=120"`
	StudentContact datatypes.JSONMap `json:"student_contact" validate:"omitempty"`
	StudentUserID  *uuid.UUID        `json:"student_user_id" validate:"omitempty"`
}

// UpdateStudentRequest is partial; student_number is never updatable.
type UpdateStudentRequest struct {
	StudentName    *string            `json:"student_name" validate:"omitempty,min=3,max=120"`
	StudentContact *datatypes.JSONMap `json:"student_contact" validate:"omitempty"`
	StudentUserID  *uuid.UUID         `json:"student_user_id" validate:"omitempty"`
	StudentIsActive *bool             `json:"student_is_active" validate:"omitempty"`
}

// ===== Responses =====

type StudentResponse struct {
	StudentID      uuid.UUID         `json:"student_id"`
	StudentNumber  int64             `json:"student_number"`
	StudentName    string            `json:"student_name"`
	StudentContact datatypes.JSONMap `json:"student_contact,omitempty"`
	StudentUserID  *uuid.UUID        `json:"student_user_id,omitempty"`
	StudentIsActive bool             `json:"student_is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromStudentModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:       m.StudentID,
		StudentNumber:   m.StudentNumber,
		StudentName:     m.StudentName,
		StudentContact:  m.StudentContact,
		StudentUserID:   m.StudentUserID,
		StudentIsActive: m.StudentIsActive,
		CreatedAt:       m.StudentCreatedAt,
		UpdatedAt:       m.StudentUpdatedAt,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromStudentModel(&ms[i]))
	}
	return out
}
