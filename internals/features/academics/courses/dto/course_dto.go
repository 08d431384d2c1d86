// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfizku_backend/internals/features/academics/courses/model"
)

/* ================== REQUESTS ================== */

type CreateCourseRequest struct {
	CourseProgramID    uuid.UUID  `json:"course_program_id" validate:"required"`
	CourseTeacherID    *uuid.UUID `json:"course_teacher_id" validate:"omitempty"`
	CourseName         string     `json:"course_name" validate:"required,min=3,max=120"`
	CourseDescription  *string    `json:"course_description" validate:"omitempty,max=2000"`
	CourseLevel        string     `json:"course_level" validate:"required,oneof=beginner intermediate advanced"`
	CourseMaxStudents  int        `json:"course_max_students" validate:"min=0,max=500"`
	CourseScheduleDays []string   `json:"course_schedule_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

type UpdateCourseRequest struct {
	CourseTeacherID    *uuid.UUID `json:"course_teacher_id" validate:"omitempty"`
	CourseName         *string    `json:"course_name" validate:"omitempty,min=3,max=120"`
	CourseDescription  *string    `json:"course_description" validate:"omitempty,max=2000"`
	CourseLevel        *string    `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	CourseMaxStudents  *int       `json:"course_max_students" validate:"omitempty,min=0,max=500"`
	CourseScheduleDays []string   `json:"course_schedule_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	CourseIsActive     *bool      `json:"course_is_active" validate:"omitempty"`
}

/* ================== RESPONSES ================== */

type CourseResponse struct {
	CourseID           uuid.UUID  `json:"course_id"`
	CourseProgramID    uuid.UUID  `json:"course_program_id"`
	CourseTeacherID    *uuid.UUID `json:"course_teacher_id,omitempty"`
	CourseName         string     `json:"course_name"`
	CourseDescription  *string    `json:"course_description,omitempty"`
	CourseLevel        string     `json:"course_level"`
	CourseMaxStudents  int        `json:"course_max_students"`
	CourseScheduleDays []string   `json:"course_schedule_days"`
	CourseIsActive     bool       `json:"course_is_active"`
	CourseCreatedAt    time.Time  `json:"course_created_at"`
	CourseUpdatedAt    time.Time  `json:"course_updated_at"`
}

func FromCourseModel(m model.CourseModel) CourseResponse {
	days := []string(m.CourseScheduleDays)
	if days == nil {
		days = []string{}
	}
	return CourseResponse{
		CourseID:           m.CourseID,
		CourseProgramID:    m.CourseProgramID,
		CourseTeacherID:    m.CourseTeacherID,
		CourseName:         m.CourseName,
		CourseDescription:  m.CourseDescription,
		CourseLevel:        m.CourseLevel,
		CourseMaxStudents:  m.CourseMaxStudents,
		CourseScheduleDays: days,
		CourseIsActive:     m.CourseIsActive,
		CourseCreatedAt:    m.CourseCreatedAt,
		CourseUpdatedAt:    m.CourseUpdatedAt,
	}
}

func FromCourseModels(rows []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromCourseModel(r))
	}
	return out
}
