// file: internals/features/grades/scores/controller/weekly_grade_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfizku_backend/internals/features/grades/scores/dto"
	"tahfizku_backend/internals/features/grades/scores/model"
	helper "tahfizku_backend/internals/helpers"
)

var weeklyGradeConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "weekly_grade_student_id"},
		{Name: "weekly_grade_course_id"},
		{Name: "weekly_grade_week"},
	},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"weekly_grade_value":      gorm.Expr("EXCLUDED.weekly_grade_value"),
		"weekly_grade_notes":      gorm.Expr("EXCLUDED.weekly_grade_notes"),
		"weekly_grade_updated_at": gorm.Expr("now()"),
	}),
}

// POST /api/t/grades/weekly
func (ctl *ScoreController) UpsertWeekly(c *fiber.Ctx) error {
	var req dto.UpsertWeeklyGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.guardCourse(c, req.CourseID); err != nil {
		return err
	}

	row := model.WeeklyGradeModel{
		WeeklyGradeStudentID: req.StudentID,
		WeeklyGradeCourseID:  req.CourseID,
		WeeklyGradeWeek:      req.Week,
		WeeklyGradeValue:     req.Grade,
		WeeklyGradeNotes:     req.Notes,
	}
	if err := ctl.DB.Clauses(weeklyGradeConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save weekly grade")
	}

	return helper.Success(c, "Weekly grade saved", dto.FromWeeklyGradeModel(row))
}

// GET /api/t/grades/weekly/course/:courseId?week=N
func (ctl *ScoreController) ListWeeklyByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}
	if err := ctl.guardCourse(c, courseID); err != nil {
		return err
	}

	tx := ctl.DB.Where("weekly_grade_course_id = ?", courseID)
	if week := c.QueryInt("week"); week > 0 {
		tx = tx.Where("weekly_grade_week = ?", week)
	}

	var rows []model.WeeklyGradeModel
	if err := tx.Order("weekly_grade_week, weekly_grade_student_id").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch weekly grades")
	}

	return helper.Success(c, "Weekly grades fetched", dto.FromWeeklyGradeModels(rows))
}

// GET /api/u/grades/weekly?course_id=...
func (ctl *ScoreController) ListWeeklyMine(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDQuery(c, "course_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}
	studentID, err := ctl.selfStudentInCourse(c, courseID)
	if err != nil {
		return err
	}

	var rows []model.WeeklyGradeModel
	if err := ctl.DB.
		Where("weekly_grade_student_id = ? AND weekly_grade_course_id = ?", studentID, courseID).
		Order("weekly_grade_week").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch weekly grades")
	}

	return helper.Success(c, "Weekly grades fetched", dto.FromWeeklyGradeModels(rows))
}
