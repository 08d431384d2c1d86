// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfizku_backend/internals/constants"
	authMiddleware "tahfizku_backend/internals/middlewares/auth"
	routeDetails "tahfizku_backend/internals/route/details"

	authRoute "tahfizku_backend/internals/features/users/auth/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// Any authenticated user (students see only their own data).
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// Teachers and admins; every course operation still passes the
	// ownership guard inside the handler.
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("this area"), constants.TeacherAndAbove),
	)

	// Admins only.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("this area"), constants.AdminOnly),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting admin routes...")
	routeDetails.AdminRoutes(admin, db)

	log.Println("[INFO] Mounting teacher routes...")
	routeDetails.TeacherRoutes(teacher, db)

	log.Println("[INFO] Mounting user routes...")
	routeDetails.UserRoutes(user, db)
}
