// file: internals/route/details/teacher_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "tahfizku_backend/internals/features/academics/courses/route"
	enrollmentRoute "tahfizku_backend/internals/features/academics/enrollments/route"
	attendanceRoute "tahfizku_backend/internals/features/grades/attendance/route"
	behaviorRoute "tahfizku_backend/internals/features/grades/behavior/route"
	dailyTaskRoute "tahfizku_backend/internals/features/grades/daily_task/route"
	reportRoute "tahfizku_backend/internals/features/grades/report/route"
	scoreRoute "tahfizku_backend/internals/features/grades/scores/route"
)

// TeacherRoutes mounts everything reachable under /api/t. Every handler in
// here re-checks course ownership; the group middleware only filters roles.
func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	courseRoute.CourseTeacherRoutes(api, db)
	enrollmentRoute.EnrollmentRequestTeacherRoutes(api, db)
	attendanceRoute.AttendanceTeacherRoutes(api, db)
	scoreRoute.ScoreTeacherRoutes(api, db)
	behaviorRoute.BehaviorTeacherRoutes(api, db)
	dailyTaskRoute.DailyTaskTeacherRoutes(api, db)
	reportRoute.ReportTeacherRoutes(api, db)
}
