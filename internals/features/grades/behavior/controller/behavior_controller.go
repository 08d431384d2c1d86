// file: internals/features/grades/behavior/controller/behavior_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	accessService "tahfizku_backend/internals/features/academics/access/service"
	"tahfizku_backend/internals/features/grades/behavior/dto"
	"tahfizku_backend/internals/features/grades/behavior/model"
	helper "tahfizku_backend/internals/helpers"
	"tahfizku_backend/internals/helpers/dbtime"
)

type BehaviorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBehaviorController(db *gorm.DB, v *validator.Validate) *BehaviorController {
	return &BehaviorController{DB: db, Validator: v}
}

var behaviorGradeConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "behavior_grade_student_id"},
		{Name: "behavior_grade_course_id"},
		{Name: "behavior_grade_date"},
	},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"behavior_grade_daily_score": gorm.Expr("EXCLUDED.behavior_grade_daily_score"),
		"behavior_grade_notes":       gorm.Expr("EXCLUDED.behavior_grade_notes"),
		"behavior_grade_updated_at":  gorm.Expr("now()"),
	}),
}

var behaviorPointConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "behavior_point_student_id"},
		{Name: "behavior_point_course_id"},
		{Name: "behavior_point_date"},
	},
	DoUpdates: clause.Assignments(map[string]interface{}{
		"behavior_point_early_attendance":     gorm.Expr("EXCLUDED.behavior_point_early_attendance"),
		"behavior_point_perfect_memorization": gorm.Expr("EXCLUDED.behavior_point_perfect_memorization"),
		"behavior_point_active_participation": gorm.Expr("EXCLUDED.behavior_point_active_participation"),
		"behavior_point_time_commitment":      gorm.Expr("EXCLUDED.behavior_point_time_commitment"),
		"behavior_point_updated_at":           gorm.Expr("now()"),
	}),
}

func (ctl *BehaviorController) guardCourse(c *fiber.Ctx, courseID uuid.UUID) error {
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

// POST /api/t/behavior/grades
func (ctl *BehaviorController) UpsertGrade(c *fiber.Ctx) error {
	var req dto.UpsertBehaviorGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.guardCourse(c, req.CourseID); err != nil {
		return err
	}

	row := model.BehaviorGradeModel{
		BehaviorGradeStudentID:  req.StudentID,
		BehaviorGradeCourseID:   req.CourseID,
		BehaviorGradeDate:       dbtime.NormalizeDate(req.Date),
		BehaviorGradeDailyScore: req.DailyScore,
		BehaviorGradeNotes:      req.Notes,
	}
	if err := ctl.DB.Clauses(behaviorGradeConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save behavior grade")
	}

	return helper.Success(c, "Behavior grade saved", dto.FromBehaviorGradeModel(row))
}

// POST /api/t/behavior/points
func (ctl *BehaviorController) UpsertPoint(c *fiber.Ctx) error {
	var req dto.UpsertBehaviorPointRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.guardCourse(c, req.CourseID); err != nil {
		return err
	}

	row := model.BehaviorPointModel{
		BehaviorPointStudentID:           req.StudentID,
		BehaviorPointCourseID:            req.CourseID,
		BehaviorPointDate:                dbtime.NormalizeDate(req.Date),
		BehaviorPointEarlyAttendance:     req.EarlyAttendance,
		BehaviorPointPerfectMemorization: req.PerfectMemorization,
		BehaviorPointActiveParticipation: req.ActiveParticipation,
		BehaviorPointTimeCommitment:      req.TimeCommitment,
	}
	if err := ctl.DB.Clauses(behaviorPointConflict).Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save behavior point")
	}

	return helper.Success(c, "Behavior point saved", dto.FromBehaviorPointModel(row))
}

// GET /api/t/behavior/grades/course/:courseId?date=YYYY-MM-DD
func (ctl *BehaviorController) ListGradesByCourseDate(c *fiber.Ctx) error {
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

	var rows []model.BehaviorGradeModel
	if err := ctl.DB.
		Where("behavior_grade_course_id = ? AND behavior_grade_date = ?", courseID, date).
		Order("behavior_grade_student_id").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch behavior grades")
	}

	return helper.Success(c, "Behavior grades fetched", dto.FromBehaviorGradeModels(rows))
}

// GET /api/t/behavior/points/course/:courseId?date=YYYY-MM-DD
func (ctl *BehaviorController) ListPointsByCourseDate(c *fiber.Ctx) error {
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

	var rows []model.BehaviorPointModel
	if err := ctl.DB.
		Where("behavior_point_course_id = ? AND behavior_point_date = ?", courseID, date).
		Order("behavior_point_student_id").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch behavior points")
	}

	return helper.Success(c, "Behavior points fetched", dto.FromBehaviorPointModels(rows))
}
