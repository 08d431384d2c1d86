// file: internals/features/grades/scores/controller/monthly_grade_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfizku_backend/internals/features/grades/scores/dto"
	"tahfizku_backend/internals/features/grades/scores/model"
	helper "tahfizku_backend/internals/helpers"
)

var monthlyGradeConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "monthly_grade_student_id"},
		{Name: "monthly_grade_course_id"},
		{Name: "monthly_grade_month"},
	},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"monthly_grade_quran_forgetfulness":  gorm.Expr("EXCLUDED.monthly_grade_quran_forgetfulness"),
		"monthly_grade_quran_major_mistakes": gorm.Expr("EXCLUDED.monthly_grade_quran_major_mistakes"),
		"monthly_grade_quran_minor_mistakes": gorm.Expr("EXCLUDED.monthly_grade_quran_minor_mistakes"),
		"monthly_grade_tajweed_theory":       gorm.Expr("EXCLUDED.monthly_grade_tajweed_theory"),
		"monthly_grade_updated_at":           gorm.Expr("now()"),
	}),
}

// POST /api/t/grades/monthly
func (ctl *ScoreController) UpsertMonthly(c *fiber.Ctx) error {
	var req dto.UpsertMonthlyGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.guardCourse(c, req.CourseID); err != nil {
		return err
	}

	row := model.MonthlyGradeModel{
		MonthlyGradeStudentID:          req.StudentID,
		MonthlyGradeCourseID:           req.CourseID,
		MonthlyGradeMonth:              req.Month,
		MonthlyGradeQuranForgetfulness: req.QuranForgetfulness,
		MonthlyGradeQuranMajorMistakes: req.QuranMajorMistakes,
		MonthlyGradeQuranMinorMistakes: req.QuranMinorMistakes,
		MonthlyGradeTajweedTheory:      req.TajweedTheory,
	}
	if err := ctl.DB.Clauses(monthlyGradeConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save monthly grade")
	}

	return helper.Success(c, "Monthly grade saved", dto.FromMonthlyGradeModel(row))
}

// GET /api/t/grades/monthly/course/:courseId?month=N
func (ctl *ScoreController) ListMonthlyByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}
	if err := ctl.guardCourse(c, courseID); err != nil {
		return err
	}

	tx := ctl.DB.Where("monthly_grade_course_id = ?", courseID)
	if month := c.QueryInt("month"); month > 0 {
		tx = tx.Where("monthly_grade_month = ?", month)
	}

	var rows []model.MonthlyGradeModel
	if err := tx.Order("monthly_grade_month, monthly_grade_student_id").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch monthly grades")
	}

	return helper.Success(c, "Monthly grades fetched", dto.FromMonthlyGradeModels(rows))
}

// GET /api/u/grades/monthly?course_id=...
func (ctl *ScoreController) ListMonthlyMine(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDQuery(c, "course_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}
	studentID, err := ctl.selfStudentInCourse(c, courseID)
	if err != nil {
		return err
	}

	var rows []model.MonthlyGradeModel
	if err := ctl.DB.
		Where("monthly_grade_student_id = ? AND monthly_grade_course_id = ?", studentID, courseID).
		Order("monthly_grade_month").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch monthly grades")
	}

	return helper.Success(c, "Monthly grades fetched", dto.FromMonthlyGradeModels(rows))
}
