// file: internals/features/grades/behavior/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/grades/behavior/controller"
)

// BehaviorTeacherRoutes registers behavior scoring for course owners.
func BehaviorTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewBehaviorController(db, validator.New())

	behavior := api.Group("/behavior")
	behavior.Post("/grades", ctl.UpsertGrade)
	behavior.Get("/grades/course/:courseId", ctl.ListGradesByCourseDate)
	behavior.Post("/points", ctl.UpsertPoint)
	behavior.Get("/points/course/:courseId", ctl.ListPointsByCourseDate)
}
