// file: internals/features/grades/scores/controller/score_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accessService "tahfizku_backend/internals/features/academics/access/service"
	helper "tahfizku_backend/internals/helpers"
)

// ScoreController handles daily, weekly, monthly, and final-exam grade
// writes. Every mutation passes the course-ownership guard first.
type ScoreController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScoreController(db *gorm.DB, v *validator.Validate) *ScoreController {
	return &ScoreController{DB: db, Validator: v}
}

// guardCourse rejects callers who do not manage the course. Returns a nil
// error only when the caller may proceed.
func (ctl *ScoreController) guardCourse(c *fiber.Ctx, courseID uuid.UUID) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	if !accessService.CheckCourseOwnership(ctl.DB, userID, role, courseID) {
		return fiber.NewError(fiber.StatusForbidden, "You do not manage this course")
	}
	return nil
}

// selfStudentInCourse resolves the caller's student profile and verifies an
// active enrollment, for the student-facing read endpoints.
func (ctl *ScoreController) selfStudentInCourse(c *fiber.Ctx, courseID uuid.UUID) (uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	studentID, err := accessService.StudentIDForUser(ctl.DB, userID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No student profile linked to this account")
	}
	if !accessService.CheckStudentEnrollment(ctl.DB, studentID, courseID) {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Not enrolled in this course")
	}
	return studentID, nil
}
