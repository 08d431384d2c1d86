package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfizku_backend/internals/configs"
	"tahfizku_backend/internals/constants"
	authRepo "tahfizku_backend/internals/features/users/auth/repository"
	studentModel "tahfizku_backend/internals/features/users/student/model"
	userModel "tahfizku_backend/internals/features/users/user/model"
	helper "tahfizku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register creates a student account plus its linked student profile in one
// transaction. Staff accounts are created by an admin, never here.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     constants.RoleStudent,
		IsActive: true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}
		student := studentModel.StudentModel{
			StudentName:     user.UserName,
			StudentUserID:   &user.ID,
			StudentIsActive: true,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

/* ==========================
   LOGIN
========================== */

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email or user_name
	Password   string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account deactivated")
	}
	if err := CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	access, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.Success(c, "Logged in", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

type loginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req loginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "DB error")
		}
		// first Google sign-in: create the account + student profile
		newUser := userModel.UserModel{
			UserName: name,
			Email:    strings.ToLower(email),
			Password: generateDummyPassword(),
			GoogleID: &googleID,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := authRepo.CreateUser(tx, &newUser); err != nil {
				return err
			}
			student := studentModel.StudentModel{
				StudentName:     newUser.UserName,
				StudentUserID:   &newUser.ID,
				StudentIsActive: true,
			}
			return tx.Create(&student).Error
		})
		if err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.Error(c, fiber.StatusConflict, "Email already registered")
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create account")
		}
		user = &newUser
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account deactivated")
	}

	access, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.Success(c, "Logged in", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

// random placeholder, the account can only sign in through Google
func generateDummyPassword() string {
	h, _ := HashPassword(uuid.NewString())
	return h
}
