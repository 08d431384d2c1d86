// file: internals/features/grades/daily_task/dto/daily_task_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfizku_backend/internals/features/grades/daily_task/model"
)

/* ================== REQUESTS ================== */

// SubmitDailyTaskRequest is the student's own submission; the student id is
// resolved from the session, never from the body.
type SubmitDailyTaskRequest struct {
	CourseID      uuid.UUID `json:"course_id" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	ListenedFive  bool      `json:"listened_five"`
	RepeatedTen   bool      `json:"repeated_ten"`
	RecitedToPeer bool      `json:"recited_to_peer"`
	Notes         *string   `json:"notes" validate:"omitempty,max=500"`
}

// UpsertDailyTaskRequest is the teacher-side write for a named student.
type UpsertDailyTaskRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	CourseID      uuid.UUID `json:"course_id" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	ListenedFive  bool      `json:"listened_five"`
	RepeatedTen   bool      `json:"repeated_ten"`
	RecitedToPeer bool      `json:"recited_to_peer"`
	Notes         *string   `json:"notes" validate:"omitempty,max=500"`
}

/* ================== RESPONSES ================== */

type DailyTaskResponse struct {
	DailyTaskID   uuid.UUID `json:"daily_task_id"`
	StudentID     uuid.UUID `json:"student_id"`
	CourseID      uuid.UUID `json:"course_id"`
	Date          time.Time `json:"date"`
	ListenedFive  bool      `json:"listened_five"`
	RepeatedTen   bool      `json:"repeated_ten"`
	RecitedToPeer bool      `json:"recited_to_peer"`
	Notes         *string   `json:"notes,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromDailyTaskModel(m model.DailyTaskModel) DailyTaskResponse {
	return DailyTaskResponse{
		DailyTaskID:   m.DailyTaskID,
		StudentID:     m.DailyTaskStudentID,
		CourseID:      m.DailyTaskCourseID,
		Date:          m.DailyTaskDate,
		ListenedFive:  m.DailyTaskListenedFive,
		RepeatedTen:   m.DailyTaskRepeatedTen,
		RecitedToPeer: m.DailyTaskRecitedToPeer,
		Notes:         m.DailyTaskNotes,
		UpdatedAt:     m.DailyTaskUpdatedAt,
	}
}

func FromDailyTaskModels(rows []model.DailyTaskModel) []DailyTaskResponse {
	out := make([]DailyTaskResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromDailyTaskModel(r))
	}
	return out
}
