// file: internals/features/grades/scores/dto/score_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfizku_backend/internals/features/grades/scores/model"
)

/* ================== DAILY ================== */

type UpsertDailyGradeRequest struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	CourseID     uuid.UUID `json:"course_id" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	Memorization float64   `json:"memorization" validate:"min=0,max=5"`
	Review       float64   `json:"review" validate:"min=0,max=5"`
	Notes        *string   `json:"notes" validate:"omitempty,max=500"`
}

type DailyGradeResponse struct {
	DailyGradeID uuid.UUID `json:"daily_grade_id"`
	StudentID    uuid.UUID `json:"student_id"`
	CourseID     uuid.UUID `json:"course_id"`
	Date         time.Time `json:"date"`
	Memorization float64   `json:"memorization"`
	Review       float64   `json:"review"`
	Notes        *string   `json:"notes,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromDailyGradeModel(m model.DailyGradeModel) DailyGradeResponse {
	return DailyGradeResponse{
		DailyGradeID: m.DailyGradeID,
		StudentID:    m.DailyGradeStudentID,
		CourseID:     m.DailyGradeCourseID,
		Date:         m.DailyGradeDate,
		Memorization: m.DailyGradeMemorization,
		Review:       m.DailyGradeReview,
		Notes:        m.DailyGradeNotes,
		UpdatedAt:    m.DailyGradeUpdatedAt,
	}
}

func FromDailyGradeModels(rows []model.DailyGradeModel) []DailyGradeResponse {
	out := make([]DailyGradeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromDailyGradeModel(r))
	}
	return out
}

/* ================== WEEKLY ================== */

type UpsertWeeklyGradeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	Week      int       `json:"week" validate:"required,min=1,max=10"`
	Grade     float64   `json:"grade" validate:"min=0,max=5"`
	Notes     *string   `json:"notes" validate:"omitempty,max=500"`
}

type WeeklyGradeResponse struct {
	WeeklyGradeID uuid.UUID `json:"weekly_grade_id"`
	StudentID     uuid.UUID `json:"student_id"`
	CourseID      uuid.UUID `json:"course_id"`
	Week          int       `json:"week"`
	Grade         float64   `json:"grade"`
	Notes         *string   `json:"notes,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromWeeklyGradeModel(m model.WeeklyGradeModel) WeeklyGradeResponse {
	return WeeklyGradeResponse{
		WeeklyGradeID: m.WeeklyGradeID,
		StudentID:     m.WeeklyGradeStudentID,
		CourseID:      m.WeeklyGradeCourseID,
		Week:          m.WeeklyGradeWeek,
		Grade:         m.WeeklyGradeValue,
		Notes:         m.WeeklyGradeNotes,
		UpdatedAt:     m.WeeklyGradeUpdatedAt,
	}
}

func FromWeeklyGradeModels(rows []model.WeeklyGradeModel) []WeeklyGradeResponse {
	out := make([]WeeklyGradeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromWeeklyGradeModel(r))
	}
	return out
}

/* ================== MONTHLY ================== */

type UpsertMonthlyGradeRequest struct {
	StudentID          uuid.UUID `json:"student_id" validate:"required"`
	CourseID           uuid.UUID `json:"course_id" validate:"required"`
	Month              int       `json:"month" validate:"required,min=1,max=3"`
	QuranForgetfulness float64   `json:"quran_forgetfulness" validate:"min=0,max=5"`
	QuranMajorMistakes float64   `json:"quran_major_mistakes" validate:"min=0,max=5"`
	QuranMinorMistakes float64   `json:"quran_minor_mistakes" validate:"min=0,max=5"`
	TajweedTheory      float64   `json:"tajweed_theory" validate:"min=0,max=15"`
}

type MonthlyGradeResponse struct {
	MonthlyGradeID     uuid.UUID `json:"monthly_grade_id"`
	StudentID          uuid.UUID `json:"student_id"`
	CourseID           uuid.UUID `json:"course_id"`
	Month              int       `json:"month"`
	QuranForgetfulness float64   `json:"quran_forgetfulness"`
	QuranMajorMistakes float64   `json:"quran_major_mistakes"`
	QuranMinorMistakes float64   `json:"quran_minor_mistakes"`
	TajweedTheory      float64   `json:"tajweed_theory"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromMonthlyGradeModel(m model.MonthlyGradeModel) MonthlyGradeResponse {
	return MonthlyGradeResponse{
		MonthlyGradeID:     m.MonthlyGradeID,
		StudentID:          m.MonthlyGradeStudentID,
		CourseID:           m.MonthlyGradeCourseID,
		Month:              m.MonthlyGradeMonth,
		QuranForgetfulness: m.MonthlyGradeQuranForgetfulness,
		QuranMajorMistakes: m.MonthlyGradeQuranMajorMistakes,
		QuranMinorMistakes: m.MonthlyGradeQuranMinorMistakes,
		TajweedTheory:      m.MonthlyGradeTajweedTheory,
		UpdatedAt:          m.MonthlyGradeUpdatedAt,
	}
}

func FromMonthlyGradeModels(rows []model.MonthlyGradeModel) []MonthlyGradeResponse {
	out := make([]MonthlyGradeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromMonthlyGradeModel(r))
	}
	return out
}

/* ================== FINAL EXAM ================== */

type UpsertFinalExamRequest struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	CourseID    uuid.UUID `json:"course_id" validate:"required"`
	QuranTest   float64   `json:"quran_test" validate:"min=0,max=40"`
	TajweedTest float64   `json:"tajweed_test" validate:"min=0,max=20"`
}

type FinalExamResponse struct {
	FinalExamID uuid.UUID `json:"final_exam_id"`
	StudentID   uuid.UUID `json:"student_id"`
	CourseID    uuid.UUID `json:"course_id"`
	QuranTest   float64   `json:"quran_test"`
	TajweedTest float64   `json:"tajweed_test"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromFinalExamModel(m model.FinalExamModel) FinalExamResponse {
	return FinalExamResponse{
		FinalExamID: m.FinalExamID,
		StudentID:   m.FinalExamStudentID,
		CourseID:    m.FinalExamCourseID,
		QuranTest:   m.FinalExamQuranTest,
		TajweedTest: m.FinalExamTajweedTest,
		UpdatedAt:   m.FinalExamUpdatedAt,
	}
}
