// internals/middlewares/auth/claims_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "tahfizku_backend/internals/features/users/user/model"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// 1) Authorization header
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth != "" {
		const p = "Bearer "
		if strings.HasPrefix(auth, p) {
			tok := strings.TrimSpace(auth[len(p):])
			if tok != "" {
				return tok, nil
			}
		}
		return "", errors.New("Unauthorized - Malformed Authorization header")
	}
	// 2) Cookie fallback
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"sub", "id", "user_id"} {
		if raw, ok := claims[key]; ok {
			if s, ok := raw.(string); ok {
				if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
					return id, nil
				}
			}
		}
	}
	return uuid.Nil, errors.New("user id claim missing or invalid")
}

/* ======== Validators ======== */

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	rawExp, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	var expUnix int64
	switch v := rawExp.(type) {
	case float64:
		expUnix = int64(v)
	case int64:
		expUnix = v
	default:
		return errors.New("exp claim invalid")
	}
	if time.Now().After(time.Unix(expUnix, 0).Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var u userModel.UserModel
	if err := db.Select("id", "is_active").First(&u, "id = ?", userID).Error; err != nil {
		return err
	}
	if !u.IsActive {
		return errors.New("user deactivated")
	}
	return nil
}

/* ======== Locals ======== */

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok && role != "" {
		c.Locals("userRole", role)
	}
	if name, ok := claims["user_name"].(string); ok && name != "" {
		c.Locals("user_name", name)
	}
}
