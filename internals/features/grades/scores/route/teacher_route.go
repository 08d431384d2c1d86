// file: internals/features/grades/scores/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/features/grades/scores/controller"
)

// ScoreTeacherRoutes registers grade recording for course owners.
func ScoreTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewScoreController(db, validator.New())

	grades := api.Group("/grades")

	grades.Post("/daily", ctl.UpsertDaily)
	grades.Get("/daily/course/:courseId", ctl.ListDailyByCourseDate)

	grades.Post("/weekly", ctl.UpsertWeekly)
	grades.Get("/weekly/course/:courseId", ctl.ListWeeklyByCourse)

	grades.Post("/monthly", ctl.UpsertMonthly)
	grades.Get("/monthly/course/:courseId", ctl.ListMonthlyByCourse)

	grades.Post("/final", ctl.UpsertFinal)
	grades.Get("/final/course/:courseId/student/:studentId", ctl.GetFinal)
}

// ScoreUserRoutes registers the self-views for enrolled students.
func ScoreUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewScoreController(db, validator.New())

	grades := api.Group("/grades")
	grades.Get("/daily", ctl.ListDailyMine)
	grades.Get("/weekly", ctl.ListWeeklyMine)
	grades.Get("/monthly", ctl.ListMonthlyMine)
	grades.Get("/final", ctl.GetFinalMine)
}
