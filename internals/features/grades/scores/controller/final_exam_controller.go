// file: internals/features/grades/scores/controller/final_exam_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfizku_backend/internals/features/grades/scores/dto"
	"tahfizku_backend/internals/features/grades/scores/model"
	helper "tahfizku_backend/internals/helpers"
)

var finalExamConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "final_exam_student_id"},
		{Name: "final_exam_course_id"},
	},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"final_exam_quran_test":   gorm.Expr("EXCLUDED.final_exam_quran_test"),
		"final_exam_tajweed_test": gorm.Expr("EXCLUDED.final_exam_tajweed_test"),
		"final_exam_updated_at":   gorm.Expr("now()"),
	}),
}

// POST /api/t/grades/final
func (ctl *ScoreController) UpsertFinal(c *fiber.Ctx) error {
	var req dto.UpsertFinalExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.guardCourse(c, req.CourseID); err != nil {
		return err
	}

	row := model.FinalExamModel{
		FinalExamStudentID:   req.StudentID,
		FinalExamCourseID:    req.CourseID,
		FinalExamQuranTest:   req.QuranTest,
		FinalExamTajweedTest: req.TajweedTest,
	}
	if err := ctl.DB.Clauses(finalExamConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save final exam")
	}

	return helper.Success(c, "Final exam saved", dto.FromFinalExamModel(row))
}

// GET /api/t/grades/final/course/:courseId/student/:studentId
func (ctl *ScoreController) GetFinal(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	if err := ctl.guardCourse(c, courseID); err != nil {
		return err
	}

	var row model.FinalExamModel
	if err := ctl.DB.First(&row,
		"final_exam_student_id = ? AND final_exam_course_id = ?", studentID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Final exam not recorded")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch final exam")
	}

	return helper.Success(c, "Final exam fetched", dto.FromFinalExamModel(row))
}

// GET /api/u/grades/final?course_id=...
func (ctl *ScoreController) GetFinalMine(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDQuery(c, "course_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}
	studentID, err := ctl.selfStudentInCourse(c, courseID)
	if err != nil {
		return err
	}

	var row model.FinalExamModel
	if err := ctl.DB.First(&row,
		"final_exam_student_id = ? AND final_exam_course_id = ?", studentID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Final exam not recorded")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch final exam")
	}

	return helper.Success(c, "Final exam fetched", dto.FromFinalExamModel(row))
}
