// file: internals/features/grades/attendance/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/grades/attendance/controller"
)

// AttendanceTeacherRoutes registers attendance recording for course owners.
func AttendanceTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db, validator.New())

	attendances := api.Group("/attendances")
	attendances.Post("/", ctl.Upsert)
	attendances.Post("/bulk", ctl.UpsertBulk)
	attendances.Get("/course/:courseId", ctl.ListByCourseDate)
}

// AttendanceUserRoutes registers the self-view for students.
func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db, validator.New())

	api.Get("/attendances", ctl.ListMine)
}
