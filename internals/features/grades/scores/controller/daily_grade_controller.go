// file: internals/features/grades/scores/controller/daily_grade_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfizku_backend/internals/features/grades/scores/dto"
	"tahfizku_backend/internals/features/grades/scores/model"
	helper "tahfizku_backend/internals/helpers"
	"tahfizku_backend/internals/helpers/dbtime"
)

var dailyGradeConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "daily_grade_student_id"},
		{Name: "daily_grade_course_id"},
		{Name: "daily_grade_date"},
	},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"daily_grade_memorization": gorm.Expr("EXCLUDED.daily_grade_memorization"),
		"daily_grade_review":       gorm.Expr("EXCLUDED.daily_grade_review"),
		"daily_grade_notes":        gorm.Expr("EXCLUDED.daily_grade_notes"),
		"daily_grade_updated_at":   gorm.Expr("now()"),
	}),
}

// POST /api/t/grades/daily
func (ctl *ScoreController) UpsertDaily(c *fiber.Ctx) error {
	var req dto.UpsertDailyGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.guardCourse(c, req.CourseID); err != nil {
		return err
	}

	row := model.DailyGradeModel{
		DailyGradeStudentID:    req.StudentID,
		DailyGradeCourseID:     req.CourseID,
		DailyGradeDate:         dbtime.NormalizeDate(req.Date),
		DailyGradeMemorization: req.Memorization,
		DailyGradeReview:       req.Review,
		DailyGradeNotes:        req.Notes,
	}
	if err := ctl.DB.Clauses(dailyGradeConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save daily grade")
	}

	return helper.Success(c, "Daily grade saved", dto.FromDailyGradeModel(row))
}

// GET /api/t/grades/daily/course/:courseId?date=YYYY-MM-DD
func (ctl *ScoreController) ListDailyByCourseDate(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}
	if err := ctl.guardCourse(c, courseID); err != nil {
		return err
	}

	date, err := dbtime.ParseDateParam(c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, use YYYY-MM-DD")
	}

	var rows []model.DailyGradeModel
	if err := ctl.DB.
		Where("daily_grade_course_id = ? AND daily_grade_date = ?", courseID, date).
		Order("daily_grade_student_id").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch daily grades")
	}

	return helper.Success(c, "Daily grades fetched", dto.FromDailyGradeModels(rows))
}

// GET /api/u/grades/daily?course_id=...
func (ctl *ScoreController) ListDailyMine(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDQuery(c, "course_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}
	studentID, err := ctl.selfStudentInCourse(c, courseID)
	if err != nil {
		return err
	}

	var rows []model.DailyGradeModel
	if err := ctl.DB.
		Where("daily_grade_student_id = ? AND daily_grade_course_id = ?", studentID, courseID).
		Order("daily_grade_date DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch daily grades")
	}

	return helper.Success(c, "Daily grades fetched", dto.FromDailyGradeModels(rows))
}
