// file: internals/features/academics/programs/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/academics/programs/controller"
)

// ProgramAdminRoutes registers program management under the admin group.
func ProgramAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewProgramController(db, validator.New())

	programs := api.Group("/programs")
	programs.Get("/", ctl.List)
	programs.Get("/:id", ctl.GetByID)
	programs.Post("/", ctl.Create)
	programs.Put("/:id", ctl.Update)
	programs.Delete("/:id", ctl.Delete)
}
