// file: internals/features/grades/attendance/controller/attendance_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	accessService "tahfizku_backend/internals/features/academics/access/service"
	"tahfizku_backend/internals/features/grades/attendance/dto"
	"tahfizku_backend/internals/features/grades/attendance/model"
	helper "tahfizku_backend/internals/helpers"
	"tahfizku_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validator: v}
}

// attendanceConflict makes every write an upsert on the day key: the second
// write for the same (student, course, date) wins.
var attendanceConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "attendance_student_id"},
		{Name: "attendance_course_id"},
		{Name: "attendance_date"},
	},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"attendance_status":     gorm.Expr("EXCLUDED.attendance_status"),
		"attendance_notes":      gorm.Expr("EXCLUDED.attendance_notes"),
		"attendance_updated_at": gorm.Expr("now()"),
	}),
}

// POST /api/t/attendances — upsert one record.
func (ctl *AttendanceController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !accessService.CheckCourseOwnership(ctl.DB, userID, role, req.CourseID) {
		return helper.Error(c, fiber.StatusForbidden, "You do not manage this course")
	}

	row := model.AttendanceModel{
		AttendanceStudentID: req.StudentID,
		AttendanceCourseID:  req.CourseID,
		AttendanceDate:      dbtime.NormalizeDate(req.Date),
		AttendanceStatus:    req.Status,
		AttendanceNotes:     req.Notes,
	}
	if err := ctl.DB.Clauses(attendanceConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.Success(c, "Attendance saved", dto.FromAttendanceModel(row))
}

// POST /api/t/attendances/bulk — one day for the whole class, all-or-nothing.
func (ctl *AttendanceController) UpsertBulk(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !accessService.CheckCourseOwnership(ctl.DB, userID, role, req.CourseID) {
		return helper.Error(c, fiber.StatusForbidden, "You do not manage this course")
	}

	date := dbtime.NormalizeDate(req.Date)
	rows := make([]model.AttendanceModel, 0, len(req.Records))
	for _, rec := range req.Records {
		rows = append(rows, model.AttendanceModel{
			AttendanceStudentID: rec.StudentID,
			AttendanceCourseID:  req.CourseID,
			AttendanceDate:      date,
			AttendanceStatus:    rec.Status,
			AttendanceNotes:     rec.Notes,
		})
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(attendanceConflict).Create(&rows).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attendance batch")
	}

	return helper.Success(c, "Attendance batch saved", fiber.Map{
		"course_id": req.CourseID,
		"date":      date,
		"saved":     len(rows),
	})
}

// GET /api/t/attendances/course/:courseId?date=YYYY-MM-DD
func (ctl *AttendanceController) ListByCourseDate(c *fiber.Ctx) error {
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

	date, err := dbtime.ParseDateParam(c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date, use YYYY-MM-DD")
	}

	var rows []model.AttendanceModel
	if err := ctl.DB.
		Where("attendance_course_id = ? AND attendance_date = ?", courseID, date).
		Order("attendance_student_id").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.Success(c, "Attendance fetched", dto.FromAttendanceModels(rows))
}

// GET /api/u/attendances — a student's own history in one course.
func (ctl *AttendanceController) ListMine(c *fiber.Ctx) error {
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

	var rows []model.AttendanceModel
	if err := ctl.DB.
		Where("attendance_student_id = ? AND attendance_course_id = ?", studentID, courseID).
		Order("attendance_date DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.Success(c, "Attendance fetched", dto.FromAttendanceModels(rows))
}
