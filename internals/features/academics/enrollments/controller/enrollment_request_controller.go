// file: internals/features/academics/enrollments/controller/enrollment_request_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accessService "tahfizku_backend/internals/features/academics/access/service"
	"tahfizku_backend/internals/features/academics/enrollments/dto"
	"tahfizku_backend/internals/features/academics/enrollments/model"
	"tahfizku_backend/internals/features/academics/enrollments/service"
	helper "tahfizku_backend/internals/helpers"
)

type EnrollmentRequestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentRequestController(db *gorm.DB, v *validator.Validate) *EnrollmentRequestController {
	return &EnrollmentRequestController{DB: db, Validator: v}
}

// POST /api/u/enrollment-requests — a student applies to join a course.
// A rejected request for the same course is reopened instead of duplicated.
func (ctl *EnrollmentRequestController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	studentID, err := accessService.StudentIDForUser(ctl.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusForbidden, "No student profile linked to this account")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve student profile")
	}

	if accessService.CheckStudentEnrollment(ctl.DB, studentID, req.CourseID) {
		return helper.Error(c, fiber.StatusConflict, "Already enrolled in this course")
	}

	var row model.EnrollmentRequestModel
	findErr := ctl.DB.First(&row,
		"request_student_id = ? AND request_course_id = ?", studentID, req.CourseID).Error
	switch {
	case findErr == nil:
		if row.IsPending() {
			return helper.Error(c, fiber.StatusConflict, "A pending request already exists for this course")
		}
		updates := map[string]interface{}{
			"request_status":      model.RequestStatusPending,
			"request_note":        req.Note,
			"request_resolved_by": nil,
			"request_resolved_at": nil,
		}
		if err := ctl.DB.Model(&row).Updates(updates).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit enrollment request")
		}
		row.RequestStatus = model.RequestStatusPending
		row.RequestNote = req.Note
		row.RequestResolvedBy = nil
		row.RequestResolvedAt = nil
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		row = model.EnrollmentRequestModel{
			RequestStudentID: studentID,
			RequestCourseID:  req.CourseID,
			RequestStatus:    model.RequestStatusPending,
			RequestNote:      req.Note,
		}
		if err := ctl.DB.Create(&row).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.Error(c, fiber.StatusConflict, "A request already exists for this course")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit enrollment request")
		}
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit enrollment request")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment request submitted", dto.FromRequestModel(row))
}

// GET /api/u/enrollment-requests — the caller's own requests.
func (ctl *EnrollmentRequestController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := accessService.StudentIDForUser(ctl.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Enrollment requests fetched", []dto.EnrollmentRequestResponse{})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve student profile")
	}

	var rows []model.EnrollmentRequestModel
	if err := ctl.DB.Where("request_student_id = ?", studentID).
		Order("request_created_at DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollment requests")
	}

	return helper.Success(c, "Enrollment requests fetched", dto.FromRequestModels(rows))
}

// GET /api/t/courses/:courseId/enrollment-requests
func (ctl *EnrollmentRequestController) ListForCourse(c *fiber.Ctx) error {
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

	tx := ctl.DB.Where("request_course_id = ?", courseID)
	if st := c.Query("status"); st != "" {
		tx = tx.Where("request_status = ?", st)
	} else {
		tx = tx.Where("request_status = ?", model.RequestStatusPending)
	}

	var rows []model.EnrollmentRequestModel
	if err := tx.Order("request_created_at ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollment requests")
	}

	return helper.Success(c, "Enrollment requests fetched", dto.FromRequestModels(rows))
}

// PUT /api/t/enrollment-requests/:id — accept (enrolls atomically) or reject.
func (ctl *EnrollmentRequestController) Resolve(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	requestID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var req dto.ResolveEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.EnrollmentRequestModel
	if err := ctl.DB.First(&row, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Enrollment request not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch enrollment request")
	}

	if !accessService.CheckCourseOwnership(ctl.DB, userID, role, row.RequestCourseID) {
		return helper.Error(c, fiber.StatusForbidden, "You do not manage this course")
	}
	if !row.IsPending() {
		return helper.Error(c, fiber.StatusConflict, "Request has already been resolved")
	}

	now := time.Now()
	newStatus := model.RequestStatusRejected
	if req.Action == "accept" {
		newStatus = model.RequestStatusAccepted
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// Re-check status under the transaction to avoid double resolution.
		res := tx.Model(&model.EnrollmentRequestModel{}).
			Where("request_id = ? AND request_status = ?", requestID, model.RequestStatusPending).
			Updates(map[string]interface{}{
				"request_status":      newStatus,
				"request_note":        firstNote(req.Note, row.RequestNote),
				"request_resolved_by": userID,
				"request_resolved_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("request already resolved")
		}

		if newStatus == model.RequestStatusAccepted {
			if _, err := service.EnrollStudent(tx, row.RequestStudentID, row.RequestCourseID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		code, msg := service.StatusForEnrollError(txErr)
		if txErr.Error() == "request already resolved" {
			code, msg = fiber.StatusConflict, "Request has already been resolved"
		}
		return helper.Error(c, code, msg)
	}

	row.RequestStatus = newStatus
	row.RequestResolvedBy = &userID
	row.RequestResolvedAt = &now

	return helper.Success(c, "Enrollment request resolved", dto.FromRequestModel(row))
}

func firstNote(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}
