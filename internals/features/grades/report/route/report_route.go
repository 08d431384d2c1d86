// file: internals/features/grades/report/route/report_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/grades/report/controller"
)

// ReportTeacherRoutes registers report cards for course owners.
func ReportTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db, validator.New())

	reports := api.Group("/reports")
	reports.Get("/course/:courseId", ctl.GetCourseReports)
	reports.Get("/course/:courseId/student/:studentId", ctl.GetStudentReport)
}

// ReportUserRoutes registers the self report card for enrolled students.
func ReportUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db, validator.New())

	api.Get("/reports", ctl.GetMyReport)
}
