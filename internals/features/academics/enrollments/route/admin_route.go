// file: internals/features/academics/enrollments/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/academics/enrollments/controller"
)

// EnrollmentAdminRoutes registers direct enrollment management for admins.
func EnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db, validator.New())

	enrollments := api.Group("/enrollments")
	enrollments.Post("/", ctl.Enroll)
	enrollments.Delete("/", ctl.Deactivate)
	enrollments.Get("/course/:courseId", ctl.ListByCourse)
	enrollments.Get("/student/:studentId", ctl.ListByStudent)
}
