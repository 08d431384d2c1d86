// file: internals/features/academics/courses/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/academics/courses/controller"
)

// CourseTeacherRoutes registers the ownership-scoped course views for
// teachers (admins pass the same guard).
func CourseTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db, validator.New())

	courses := api.Group("/courses")
	courses.Get("/", ctl.ListMine)
	courses.Get("/:id", ctl.GetOwned)
}

// CourseUserRoutes registers the read-only course list scoped to the caller.
func CourseUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db, validator.New())

	api.Get("/courses", ctl.ListMine)
}
