// file: internals/features/grades/report/controller/report_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accessService "tahfizku_backend/internals/features/academics/access/service"
	"tahfizku_backend/internals/features/grades/report/dto"
	"tahfizku_backend/internals/features/grades/report/service"
	helper "tahfizku_backend/internals/helpers"
)

type ReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewReportController(db *gorm.DB, v *validator.Validate) *ReportController {
	return &ReportController{DB: db, Validator: v}
}

// GET /api/t/reports/course/:courseId/student/:studentId
func (ctl *ReportController) GetStudentReport(c *fiber.Ctx) error {
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
	studentID, err := helper.ParseUUIDParam(c, "studentId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	if !accessService.CheckCourseOwnership(ctl.DB, userID, role, courseID) {
		return helper.Error(c, fiber.StatusForbidden, "You do not manage this course")
	}

	return ctl.buildReport(c, studentID, courseID)
}

// GET /api/t/reports/course/:courseId — reports for every actively enrolled
// student in the course.
func (ctl *ReportController) GetCourseReports(c *fiber.Ctx) error {
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

	var studentIDs []uuid.UUID
	if err := ctl.DB.Raw(`
		SELECT enrollment_student_id FROM enrollments
		WHERE enrollment_course_id = ?
		  AND enrollment_is_active = TRUE
		  AND enrollment_deleted_at IS NULL
		ORDER BY enrollment_enrolled_at`, courseID).Scan(&studentIDs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	reports := make([]dto.StudentReportResponse, 0, len(studentIDs))
	for _, sid := range studentIDs {
		raw, err := service.CollectRawSums(ctl.DB, sid, courseID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to aggregate grades")
		}
		reports = append(reports, dto.NewStudentReport(sid, courseID, raw, service.Aggregate(raw)))
	}

	return helper.Success(c, "Course reports fetched", reports)
}

// GET /api/u/reports?course_id=... — a student's own report card.
func (ctl *ReportController) GetMyReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := helper.ParseUUIDQuery(c, "course_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	studentID, err := accessService.StudentIDForUser(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusForbidden, "No student profile linked to this account")
	}
	if !accessService.CheckStudentEnrollment(ctl.DB, studentID, courseID) {
		return helper.Error(c, fiber.StatusForbidden, "Not enrolled in this course")
	}

	return ctl.buildReport(c, studentID, courseID)
}

func (ctl *ReportController) buildReport(c *fiber.Ctx, studentID, courseID uuid.UUID) error {
	raw, err := service.CollectRawSums(ctl.DB, studentID, courseID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to aggregate grades")
	}

	report := dto.NewStudentReport(studentID, courseID, raw, service.Aggregate(raw))
	return helper.Success(c, "Report fetched", report)
}
