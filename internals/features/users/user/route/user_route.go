package routes

import (
	userController "tahfizku_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserAdminRoutes is mounted under the admin group.
func UserAdminRoutes(app fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	app.Get("/users", userCtrl.List)
	app.Get("/users/:id", userCtrl.GetByID)
	app.Post("/users", userCtrl.Create)
	app.Put("/users/:id", userCtrl.Update)
	app.Patch("/users/:id/deactivate", userCtrl.Deactivate)
	app.Patch("/users/:id/activate", userCtrl.Activate)

	app.Get("/teachers", userCtrl.ListTeachers)
}
