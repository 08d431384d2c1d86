// file: internals/features/academics/enrollments/controller/enrollment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accessService "tahfizku_backend/internals/features/academics/access/service"
	"tahfizku_backend/internals/features/academics/enrollments/dto"
	"tahfizku_backend/internals/features/academics/enrollments/model"
	"tahfizku_backend/internals/features/academics/enrollments/service"
	helper "tahfizku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	return &EnrollmentController{DB: db, Validator: v}
}

// POST /api/a/enrollments
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row *model.EnrollmentModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		row, txErr = service.EnrollStudent(tx, req.StudentID, req.CourseID)
		return txErr
	})
	if err != nil {
		code, msg := service.StatusForEnrollError(err)
		return helper.Error(c, code, msg)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student enrolled", dto.FromEnrollmentModel(*row))
}

// DELETE /api/a/enrollments — deactivates, never removes the row
func (ctl *EnrollmentController) Deactivate(c *fiber.Ctx) error {
	var req dto.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.DeactivateEnrollment(ctl.DB, req.StudentID, req.CourseID); err != nil {
		code, msg := service.StatusForEnrollError(err)
		return helper.Error(c, code, msg)
	}

	return helper.Success(c, "Enrollment deactivated", fiber.Map{
		"student_id": req.StudentID,
		"course_id":  req.CourseID,
	})
}

// GET /api/a/enrollments/course/:courseId
func (ctl *EnrollmentController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	tx := ctl.DB.Where("enrollment_course_id = ?", courseID)
	if c.Query("active") != "" {
		tx = tx.Where("enrollment_is_active = ?", c.Query("active") == "true")
	}

	var rows []model.EnrollmentModel
	if err := tx.Order("enrollment_enrolled_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return helper.Success(c, "Enrollments fetched", dto.FromEnrollmentModels(rows))
}

// GET /api/t/courses/:courseId/roster — active enrollments with student
// details, for the course owner.
func (ctl *EnrollmentController) ListRoster(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := helper.ParseUUIDParam(c, "courseId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	if !accessService.CheckCourseOwnership(ctl.DB, userID, role, courseID) {
		return helper.Error(c, fiber.StatusForbidden, "You do not manage this course")
	}

	var roster []dto.RosterEntry
	if err := ctl.DB.Raw(`
		SELECT e.enrollment_student_id AS student_id,
		       s.student_number,
		       s.student_name,
		       e.enrollment_enrolled_at AS enrolled_at
		FROM enrollments e
		JOIN students s ON s.student_id = e.enrollment_student_id
		WHERE e.enrollment_course_id = ?
		  AND e.enrollment_is_active = TRUE
		  AND e.enrollment_deleted_at IS NULL
		  AND s.student_deleted_at IS NULL
		ORDER BY s.student_number`, courseID).Scan(&roster).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch roster")
	}

	return helper.Success(c, "Roster fetched", roster)
}

// GET /api/u/enrollments — the caller's own enrollments.
func (ctl *EnrollmentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := accessService.StudentIDForUser(ctl.DB, userID)
	if err != nil {
		return helper.Success(c, "Enrollments fetched", []dto.EnrollmentResponse{})
	}

	var rows []model.EnrollmentModel
	if err := ctl.DB.Where("enrollment_student_id = ?", studentID).
		Order("enrollment_enrolled_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return helper.Success(c, "Enrollments fetched", dto.FromEnrollmentModels(rows))
}

// GET /api/a/enrollments/student/:studentId
func (ctl *EnrollmentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var rows []model.EnrollmentModel
	if err := ctl.DB.Where("enrollment_student_id = ?", studentID).
		Order("enrollment_enrolled_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return helper.Success(c, "Enrollments fetched", dto.FromEnrollmentModels(rows))
}
