// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "tahfizku_backend/internals/features/academics/courses/route"
	enrollmentRoute "tahfizku_backend/internals/features/academics/enrollments/route"
	attendanceRoute "tahfizku_backend/internals/features/grades/attendance/route"
	dailyTaskRoute "tahfizku_backend/internals/features/grades/daily_task/route"
	reportRoute "tahfizku_backend/internals/features/grades/report/route"
	scoreRoute "tahfizku_backend/internals/features/grades/scores/route"
	authController "tahfizku_backend/internals/features/users/auth/controller"
)

// UserRoutes mounts everything reachable under /api/u: the profile endpoint
// plus the self-service views, each scoped to the caller's own data.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	auth := authController.NewAuthController(db)
	api.Get("/me", auth.Me)

	courseRoute.CourseUserRoutes(api, db)
	enrollmentRoute.EnrollmentRequestUserRoutes(api, db)
	attendanceRoute.AttendanceUserRoutes(api, db)
	scoreRoute.ScoreUserRoutes(api, db)
	dailyTaskRoute.DailyTaskUserRoutes(api, db)
	reportRoute.ReportUserRoutes(api, db)
}
