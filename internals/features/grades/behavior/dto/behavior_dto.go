// file: internals/features/grades/behavior/dto/behavior_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfizku_backend/internals/features/grades/behavior/model"
)

/* ================== REQUESTS ================== */

type UpsertBehaviorGradeRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	CourseID   uuid.UUID `json:"course_id" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
	DailyScore float64   `json:"daily_score" validate:"min=0,max=1"`
	Notes      *string   `json:"notes" validate:"omitempty,max=500"`
}

type UpsertBehaviorPointRequest struct {
	StudentID           uuid.UUID `json:"student_id" validate:"required"`
	CourseID            uuid.UUID `json:"course_id" validate:"required"`
	Date                time.Time `json:"date" validate:"required"`
	EarlyAttendance     bool      `json:"early_attendance"`
	PerfectMemorization bool      `json:"perfect_memorization"`
	ActiveParticipation bool      `json:"active_participation"`
	TimeCommitment      bool      `json:"time_commitment"`
}

/* ================== RESPONSES ================== */

type BehaviorGradeResponse struct {
	BehaviorGradeID uuid.UUID `json:"behavior_grade_id"`
	StudentID       uuid.UUID `json:"student_id"`
	CourseID        uuid.UUID `json:"course_id"`
	Date            time.Time `json:"date"`
	DailyScore      float64   `json:"daily_score"`
	Notes           *string   `json:"notes,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBehaviorGradeModel(m model.BehaviorGradeModel) BehaviorGradeResponse {
	return BehaviorGradeResponse{
		BehaviorGradeID: m.BehaviorGradeID,
		StudentID:       m.BehaviorGradeStudentID,
		CourseID:        m.BehaviorGradeCourseID,
		Date:            m.BehaviorGradeDate,
		DailyScore:      m.BehaviorGradeDailyScore,
		Notes:           m.BehaviorGradeNotes,
		UpdatedAt:       m.BehaviorGradeUpdatedAt,
	}
}

func FromBehaviorGradeModels(rows []model.BehaviorGradeModel) []BehaviorGradeResponse {
	out := make([]BehaviorGradeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromBehaviorGradeModel(r))
	}
	return out
}

type BehaviorPointResponse struct {
	BehaviorPointID     uuid.UUID `json:"behavior_point_id"`
	StudentID           uuid.UUID `json:"student_id"`
	CourseID            uuid.UUID `json:"course_id"`
	Date                time.Time `json:"date"`
	EarlyAttendance     bool      `json:"early_attendance"`
	PerfectMemorization bool      `json:"perfect_memorization"`
	ActiveParticipation bool      `json:"active_participation"`
	TimeCommitment      bool      `json:"time_commitment"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromBehaviorPointModel(m model.BehaviorPointModel) BehaviorPointResponse {
	return BehaviorPointResponse{
		BehaviorPointID:     m.BehaviorPointID,
		StudentID:           m.BehaviorPointStudentID,
		CourseID:            m.BehaviorPointCourseID,
		Date:                m.BehaviorPointDate,
		EarlyAttendance:     m.BehaviorPointEarlyAttendance,
		PerfectMemorization: m.BehaviorPointPerfectMemorization,
		ActiveParticipation: m.BehaviorPointActiveParticipation,
		TimeCommitment:      m.BehaviorPointTimeCommitment,
		UpdatedAt:           m.BehaviorPointUpdatedAt,
	}
}

func FromBehaviorPointModels(rows []model.BehaviorPointModel) []BehaviorPointResponse {
	out := make([]BehaviorPointResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromBehaviorPointModel(r))
	}
	return out
}
