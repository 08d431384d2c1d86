// file: internals/features/grades/daily_task/route/daily_task_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/grades/daily_task/controller"
)

// DailyTaskTeacherRoutes registers checklist recording for course owners.
func DailyTaskTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDailyTaskController(db, validator.New())

	tasks := api.Group("/daily-tasks")
	tasks.Post("/", ctl.Upsert)
	tasks.Get("/course/:courseId", ctl.ListByCourseDate)
}

// DailyTaskUserRoutes registers self-submission for enrolled students.
func DailyTaskUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDailyTaskController(db, validator.New())

	tasks := api.Group("/daily-tasks")
	tasks.Post("/", ctl.SubmitMine)
	tasks.Get("/", ctl.ListMine)
}
