// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfizku_backend/internals/configs"
	authModel "tahfizku_backend/internals/features/users/auth/model"
	authRepo "tahfizku_backend/internals/features/users/auth/repository"
	userModel "tahfizku_backend/internals/features/users/user/model"
	helper "tahfizku_backend/internals/helpers"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

/* ====================== ISSUING ====================== */

func buildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.ID.String(),
		"role":      u.Role,
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
}

// IssueTokens creates an access + refresh pair, stores the refresh hash and
// sets both cookies.
func IssueTokens(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return "", errors.New("jwt secrets not configured")
	}
	now := time.Now().UTC()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", err
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTokenTTL).Unix(),
		"jti": uuid.NewString(),
	}).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	rt := authModel.RefreshToken{
		UserID:    u.ID,
		TokenHash: computeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTokenTTL),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := authRepo.CreateRefreshToken(db, &rt); err != nil {
		return "", err
	}

	setAuthCookies(c, access, refresh)
	return access, nil
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	secure := configs.GetEnv("COOKIE_SECURE", "true") != "false"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Expires:  time.Now().Add(accessTokenTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/api/auth",
		Expires:  time.Now().Add(refreshTokenTTL),
	})
}

func computeRefreshHash(token, secret string) string {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return hex.EncodeToString(m.Sum(nil))
}

/* ====================== REFRESH ====================== */

// RefreshToken rotates the refresh token and issues a fresh pair.
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	secret := configs.JWTRefreshSecret
	if secret == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Missing refresh secret")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// hash must still be known and unrevoked
	h := computeRefreshHash(refreshCookie, secret)
	exists, err := authRepo.RefreshTokenHashExists(db, h)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token unknown")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Account deactivated")
	}

	// ROTATE: drop the old token before issuing a new one
	if err := authRepo.DeleteRefreshTokenByHash(db, h); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	access, err := IssueTokens(db, c, user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.Success(c, "Token refreshed", fiber.Map{"access_token": access})
}

/* ====================== LOGOUT ====================== */

// Logout blacklists the current access token and revokes the refresh pair.
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		if err := authRepo.BlacklistToken(db, raw, accessTokenTTL); err != nil && !helper.IsUniqueViolation(err) {
			log.Printf("[logout] blacklist failed: %v", err)
		}
	}

	if refresh := helper.GetRefreshTokenFromCookie(c); refresh != "" {
		h := computeRefreshHash(refresh, configs.JWTRefreshSecret)
		if err := authRepo.DeleteRefreshTokenByHash(db, h); err != nil {
			log.Printf("[logout] delete refresh failed: %v", err)
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Logged out", nil)
}
