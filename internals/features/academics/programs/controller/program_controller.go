// file: internals/features/academics/programs/controller/program_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/academics/programs/dto"
	"tahfizku_backend/internals/features/academics/programs/model"
	helper "tahfizku_backend/internals/helpers"
)

type ProgramController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgramController(db *gorm.DB, v *validator.Validate) *ProgramController {
	return &ProgramController{DB: db, Validator: v}
}

var programSortColumns = map[string]string{
	"created_at": "program_created_at",
	"updated_at": "program_updated_at",
	"name":       "program_name",
}

// GET /api/a/programs
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.ProgramModel{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("program_name ILIKE ?", "%"+q+"%")
	}
	if act := strings.TrimSpace(c.Query("active")); act != "" {
		tx = tx.Where("program_is_active = ?", act == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count programs")
	}

	order, err := p.SafeOrderClause(programSortColumns, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var rows []model.ProgramModel
	if err := tx.Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch programs")
	}

	return helper.Success(c, "Programs fetched", fiber.Map{
		"programs":   dto.FromProgramModels(rows),
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/a/programs/:id
func (ctl *ProgramController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid program ID")
	}

	var row model.ProgramModel
	if err := ctl.DB.First(&row, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch program")
	}

	return helper.Success(c, "Program fetched", dto.FromProgramModel(row))
}

// POST /api/a/programs
func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.ProgramModel{
		ProgramName:        strings.TrimSpace(req.ProgramName),
		ProgramDescription: req.ProgramDescription,
		ProgramIsActive:    true,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Program name already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create program")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program created", dto.FromProgramModel(row))
}

// PUT /api/a/programs/:id
func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid program ID")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.ProgramModel
	if err := ctl.DB.First(&row, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch program")
	}

	updates := map[string]interface{}{}
	if req.ProgramName != nil {
		updates["program_name"] = strings.TrimSpace(*req.ProgramName)
	}
	if req.ProgramDescription != nil {
		updates["program_description"] = *req.ProgramDescription
	}
	if req.ProgramIsActive != nil {
		updates["program_is_active"] = *req.ProgramIsActive
	}
	if len(updates) == 0 {
		return helper.Success(c, "No changes", dto.FromProgramModel(row))
	}

	if err := ctl.DB.Model(&row).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Program name already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update program")
	}

	return helper.Success(c, "Program updated", dto.FromProgramModel(row))
}

// DELETE /api/a/programs/:id (soft delete)
func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid program ID")
	}

	res := ctl.DB.Delete(&model.ProgramModel{}, "program_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete program")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Program not found")
	}

	return helper.Success(c, "Program deleted", fiber.Map{"program_id": id})
}
