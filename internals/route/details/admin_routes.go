// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "tahfizku_backend/internals/features/academics/courses/route"
	enrollmentRoute "tahfizku_backend/internals/features/academics/enrollments/route"
	programRoute "tahfizku_backend/internals/features/academics/programs/route"
	studentRoute "tahfizku_backend/internals/features/users/student/route"
	userRoute "tahfizku_backend/internals/features/users/user/route"
)

// AdminRoutes mounts everything reachable under /api/a.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api, db)
	studentRoute.StudentAdminRoutes(api, db)
	programRoute.ProgramAdminRoutes(api, db)
	courseRoute.CourseAdminRoutes(api, db)
	enrollmentRoute.EnrollmentAdminRoutes(api, db)
	// Admins pass the ownership guard unconditionally, so the request
	// review surface is mounted here as well.
	enrollmentRoute.EnrollmentRequestTeacherRoutes(api, db)
}
