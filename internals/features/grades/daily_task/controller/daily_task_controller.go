// file: internals/features/grades/daily_task/controller/daily_task_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	accessService "tahfizku_backend/internals/features/academics/access/service"
	"tahfizku_backend/internals/features/grades/daily_task/dto"
	"tahfizku_backend/internals/features/grades/daily_task/model"
	helper "tahfizku_backend/internals/helpers"
	"tahfizku_backend/internals/helpers/dbtime"
)

type DailyTaskController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDailyTaskController(db *gorm.DB, v *validator.Validate) *DailyTaskController {
	return &DailyTaskController{DB: db, Validator: v}
}

var dailyTaskConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "daily_task_student_id"},
		{Name: "daily_task_course_id"},
		{Name: "daily_task_date"},
	},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"daily_task_listened_five":   gorm.Expr("EXCLUDED.daily_task_listened_five"),
		"daily_task_repeated_ten":    gorm.Expr("EXCLUDED.daily_task_repeated_ten"),
		"daily_task_recited_to_peer": gorm.Expr("EXCLUDED.daily_task_recited_to_peer"),
		"daily_task_notes":           gorm.Expr("EXCLUDED.daily_task_notes"),
		"daily_task_updated_at":      gorm.Expr("now()"),
	}),
}

// POST /api/u/daily-tasks — a student ticks off today's checklist. Gated by
// an active enrollment, not course ownership.
func (ctl *DailyTaskController) SubmitMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitDailyTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	studentID, err := accessService.StudentIDForUser(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusForbidden, "No student profile linked to this account")
	}
	if !accessService.CheckStudentEnrollment(ctl.DB, studentID, req.CourseID) {
		return helper.Error(c, fiber.StatusForbidden, "Not enrolled in this course")
	}

	row := model.DailyTaskModel{
		DailyTaskStudentID:     studentID,
		DailyTaskCourseID:      req.CourseID,
		DailyTaskDate:          dbtime.NormalizeDate(req.Date),
		DailyTaskListenedFive:  req.ListenedFive,
		DailyTaskRepeatedTen:   req.RepeatedTen,
		DailyTaskRecitedToPeer: req.RecitedToPeer,
		DailyTaskNotes:         req.Notes,
	}
	if err := ctl.DB.Clauses(dailyTaskConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save daily task")
	}

	return helper.Success(c, "Daily task saved", dto.FromDailyTaskModel(row))
}

// GET /api/u/daily-tasks?course_id=...
func (ctl *DailyTaskController) ListMine(c *fiber.Ctx) error {
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

	var rows []model.DailyTaskModel
	if err := ctl.DB.
		Where("daily_task_student_id = ? AND daily_task_course_id = ?", studentID, courseID).
		Order("daily_task_date DESC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch daily tasks")
	}

	return helper.Success(c, "Daily tasks fetched", dto.FromDailyTaskModels(rows))
}

// POST /api/t/daily-tasks — teacher records a checklist for a student.
func (ctl *DailyTaskController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertDailyTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !accessService.CheckCourseOwnership(ctl.DB, userID, role, req.CourseID) {
		return helper.Error(c, fiber.StatusForbidden, "You do not manage this course")
	}

	row := model.DailyTaskModel{
		DailyTaskStudentID:     req.StudentID,
		DailyTaskCourseID:      req.CourseID,
		DailyTaskDate:          dbtime.NormalizeDate(req.Date),
		DailyTaskListenedFive:  req.ListenedFive,
		DailyTaskRepeatedTen:   req.RepeatedTen,
		DailyTaskRecitedToPeer: req.RecitedToPeer,
		DailyTaskNotes:         req.Notes,
	}
	if err := ctl.DB.Clauses(dailyTaskConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save daily task")
	}

	return helper.Success(c, "Daily task saved", dto.FromDailyTaskModel(row))
}

// GET /api/t/daily-tasks/course/:courseId?date=YYYY-MM-DD
func (ctl *DailyTaskController) ListByCourseDate(c *fiber.Ctx) error {
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

	var rows []model.DailyTaskModel
	if err := ctl.DB.
		Where("daily_task_course_id = ? AND daily_task_date = ?", courseID, date).
		Order("daily_task_student_id").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch daily tasks")
	}

	return helper.Success(c, "Daily tasks fetched", dto.FromDailyTaskModels(rows))
}
