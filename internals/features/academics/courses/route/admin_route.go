// file: internals/features/academics/courses/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/academics/courses/controller"
)

// CourseAdminRoutes registers full course management under the admin group.
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db, validator.New())

	courses := api.Group("/courses")
	courses.Get("/", ctl.List)
	courses.Get("/:id", ctl.GetByID)
	courses.Post("/", ctl.Create)
	courses.Put("/:id", ctl.Update)
	courses.Delete("/:id", ctl.Delete)
}
