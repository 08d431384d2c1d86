// file: internals/features/users/student/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfizku_backend/internals/constants"
	dto "tahfizku_backend/internals/features/users/student/dto"
	model "tahfizku_backend/internals/features/users/student/model"
	userModel "tahfizku_backend/internals/features/users/user/model"
	helper "tahfizku_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

var studentSortColumns = map[string]string{
	"name":       "student_name",
	"number":     "student_number",
	"created_at": "student_created_at",
}

// GET /api/a/students?active=&q=&page=&per_page=&sort_by=&order=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.StudentModel{})
	if v := c.Query("active"); v != "" {
		tx = tx.Where("student_is_active = ?", strings.EqualFold(v, "true") || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(student_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	order, err := p.SafeOrderClause(studentSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var students []model.StudentModel
	if err := tx.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.Success(c, "Students fetched", fiber.Map{
		"students": dto.FromStudentModels(students),
		"meta":     helper.BuildMeta(total, p),
	})
}

// GET /api/a/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return helper.Success(c, "Student fetched", dto.FromStudentModel(&student))
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.StudentUserID != nil {
		if err := ctl.ensureLinkableUser(*req.StudentUserID); err != nil {
			return err
		}
	}

	student := model.StudentModel{
		StudentName:     strings.TrimSpace(req.StudentName),
		StudentContact:  req.StudentContact,
		StudentUserID:   req.StudentUserID,
		StudentIsActive: true,
	}

	if err := ctl.DB.Create(&student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "User already linked to another student")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", dto.FromStudentModel(&student))
}

// PUT /api/a/students/:id (partial)
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	updates := map[string]interface{}{}
	if req.StudentName != nil {
		updates["student_name"] = strings.TrimSpace(*req.StudentName)
	}
	if req.StudentContact != nil {
		updates["student_contact"] = *req.StudentContact
	}
	if req.StudentUserID != nil {
		if err := ctl.ensureLinkableUser(*req.StudentUserID); err != nil {
			return err
		}
		updates["student_user_id"] = *req.StudentUserID
	}
	if req.StudentIsActive != nil {
		updates["student_is_active"] = *req.StudentIsActive
	}
	if len(updates) == 0 {
		return helper.Success(c, "Nothing to update", dto.FromStudentModel(&student))
	}

	if err := ctl.DB.Model(&student).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "User already linked to another student")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.Success(c, "Student updated", dto.FromStudentModel(&student))
}

// DELETE /api/a/students/:id (soft delete; grade rows cascade in the schema)
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctl.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.Success(c, "Student deleted", fiber.Map{"student_id": id})
}

func (ctl *StudentController) ensureLinkableUser(userID uuid.UUID) error {
	var u userModel.UserModel
	if err := ctl.DB.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Linked user not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch linked user")
	}
	if u.Role != constants.RoleStudent {
		return fiber.NewError(fiber.StatusBadRequest, "Linked user must have the student role")
	}
	return nil
}
