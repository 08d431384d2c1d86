// file: internals/features/academics/enrollments/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/academics/enrollments/controller"
)

// EnrollmentRequestTeacherRoutes lets course owners review and resolve
// pending enrollment requests.
func EnrollmentRequestTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentRequestController(db, validator.New())
	enrollCtl := controller.NewEnrollmentController(db, validator.New())

	api.Get("/courses/:courseId/roster", enrollCtl.ListRoster)
	api.Get("/courses/:courseId/enrollment-requests", ctl.ListForCourse)
	api.Put("/enrollment-requests/:id", ctl.Resolve)
}

// EnrollmentRequestUserRoutes lets students apply to courses and track their
// own requests.
func EnrollmentRequestUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentRequestController(db, validator.New())
	enrollCtl := controller.NewEnrollmentController(db, validator.New())

	api.Post("/enrollment-requests", ctl.Submit)
	api.Get("/enrollment-requests", ctl.ListMine)
	api.Get("/enrollments", enrollCtl.ListMine)
}
