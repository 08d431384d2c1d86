package routes

import (
	studentController "tahfizku_backend/internals/features/users/student/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentAdminRoutes is mounted under the admin group.
func StudentAdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	app.Get("/students", ctrl.List)
	app.Get("/students/:id", ctrl.GetByID)
	app.Post("/students", ctrl.Create)
	app.Put("/students/:id", ctrl.Update)
	app.Delete("/students/:id", ctrl.Delete)
}
