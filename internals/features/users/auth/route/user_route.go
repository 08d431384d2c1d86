// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	controller "tahfizku_backend/internals/features/users/auth/controller"
	rateLimiter "tahfizku_backend/internals/middlewares"
	authMiddleware "tahfizku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// 🔐 Requires a valid session
	baseAuth.Post("/logout", authMiddleware.AuthMiddleware(db), authController.Logout)
	baseAuth.Post("/change-password", authMiddleware.AuthMiddleware(db), authController.ChangePassword)
}
