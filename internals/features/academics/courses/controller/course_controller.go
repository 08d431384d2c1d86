// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	accessService "tahfizku_backend/internals/features/academics/access/service"
	"tahfizku_backend/internals/features/academics/courses/dto"
	"tahfizku_backend/internals/features/academics/courses/model"
	programModel "tahfizku_backend/internals/features/academics/programs/model"
	userModel "tahfizku_backend/internals/features/users/user/model"
	helper "tahfizku_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validator: v}
}

var courseSortColumns = map[string]string{
	"created_at": "course_created_at",
	"updated_at": "course_updated_at",
	"name":       "course_name",
	"level":      "course_level",
}

// GET /api/a/courses
func (ctl *CourseController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.CourseModel{})

	if pid := strings.TrimSpace(c.Query("program_id")); pid != "" {
		tx = tx.Where("course_program_id = ?", pid)
	}
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		tx = tx.Where("course_teacher_id = ?", tid)
	}
	if lvl := strings.TrimSpace(c.Query("level")); lvl != "" {
		tx = tx.Where("course_level = ?", lvl)
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		tx = tx.Where("course_is_active = ?", act == "true")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("course_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	order, err := p.SafeOrderClause(courseSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var rows []model.CourseModel
	if err := tx.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	return helper.Success(c, "Courses fetched", fiber.Map{
		"courses":    dto.FromCourseModels(rows),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/t/courses and /api/u/courses — scoped by the caller's role.
func (ctl *CourseController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	rows, err := accessService.GetUserCourses(ctl.DB, userID, role)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	return helper.Success(c, "Courses fetched", dto.FromCourseModels(rows))
}

// GET /api/t/courses/:id — ownership-guarded detail view.
func (ctl *CourseController) GetOwned(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	if !accessService.CheckCourseOwnership(ctl.DB, userID, role, id) {
		return helper.Error(c, fiber.StatusForbidden, "You do not manage this course")
	}

	var row model.CourseModel
	if err := ctl.DB.First(&row, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	return helper.Success(c, "Course fetched", dto.FromCourseModel(row))
}

// GET /api/a/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var row model.CourseModel
	if err := ctl.DB.First(&row, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	return helper.Success(c, "Course fetched", dto.FromCourseModel(row))
}

// POST /api/a/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.ensureProgramExists(req.CourseProgramID); err != nil {
		return err
	}
	if req.CourseTeacherID != nil {
		if err := ctl.ensureAssignableTeacher(*req.CourseTeacherID); err != nil {
			return err
		}
	}

	row := model.CourseModel{
		CourseProgramID:    req.CourseProgramID,
		CourseTeacherID:    req.CourseTeacherID,
		CourseName:         strings.TrimSpace(req.CourseName),
		CourseDescription:  req.CourseDescription,
		CourseLevel:        req.CourseLevel,
		CourseMaxStudents:  req.CourseMaxStudents,
		CourseScheduleDays: pq.StringArray(req.CourseScheduleDays),
		CourseIsActive:     true,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", dto.FromCourseModel(row))
}

// PUT /api/a/courses/:id
func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.CourseModel
	if err := ctl.DB.First(&row, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	updates := map[string]interface{}{}
	if req.CourseTeacherID != nil {
		if err := ctl.ensureAssignableTeacher(*req.CourseTeacherID); err != nil {
			return err
		}
		updates["course_teacher_id"] = *req.CourseTeacherID
	}
	if req.CourseName != nil {
		updates["course_name"] = strings.TrimSpace(*req.CourseName)
	}
	if req.CourseDescription != nil {
		updates["course_description"] = *req.CourseDescription
	}
	if req.CourseLevel != nil {
		updates["course_level"] = *req.CourseLevel
	}
	if req.CourseMaxStudents != nil {
		updates["course_max_students"] = *req.CourseMaxStudents
	}
	if req.CourseScheduleDays != nil {
		updates["course_schedule_days"] = pq.StringArray(req.CourseScheduleDays)
	}
	if req.CourseIsActive != nil {
		updates["course_is_active"] = *req.CourseIsActive
	}
	if len(updates) == 0 {
		return helper.Success(c, "No changes", dto.FromCourseModel(row))
	}

	if err := ctl.DB.Model(&row).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	return helper.Success(c, "Course updated", dto.FromCourseModel(row))
}

// DELETE /api/a/courses/:id (soft delete)
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	res := ctl.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}

	return helper.Success(c, "Course deleted", fiber.Map{"course_id": id})
}

func (ctl *CourseController) ensureProgramExists(programID uuid.UUID) error {
	var count int64
	if err := ctl.DB.Model(&programModel.ProgramModel{}).
		Where("program_id = ?", programID).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify program")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Program not found")
	}
	return nil
}

// ensureAssignableTeacher rejects assignment of a non-teacher account.
func (ctl *CourseController) ensureAssignableTeacher(teacherID uuid.UUID) error {
	var user userModel.UserModel
	if err := ctl.DB.Select("id", "role", "is_active").
		First(&user, "id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Teacher account not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify teacher account")
	}
	if !user.IsTeacher() {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Assigned user is not a teacher")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Teacher account is inactive")
	}
	return nil
}
