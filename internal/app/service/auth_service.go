package service

import (
	"strings"

	"github.com/msolera/catalog-backend/config"
	"github.com/msolera/catalog-backend/pkg/logger"
	"github.com/msolera/catalog-backend/pkg/util"
)

// LoginResult carries the signed token and the identity it represents.
type LoginResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthService interface {
	Login(email, password string) (*LoginResult, error)
}

// authService authenticates against the single admin account configured
// through the environment. There is no user table.
type authService struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
}

func NewAuthService(admin config.AdminConfig, jwt config.JWTConfig) AuthService {
	return &authService{admin: admin, jwt: jwt}
}

func (s *authService) Login(email, password string) (*LoginResult, error) {
	if !strings.EqualFold(email, s.admin.Email) {
		logger.Warn("Login attempt with unknown email", map[string]interface{}{
			"email": email,
		})
		return nil, ErrInvalidCredentials
	}

	if err := util.VerifyPassword(s.admin.PasswordHash, password); err != nil {
		logger.Warn("Login attempt with wrong password", map[string]interface{}{
			"email": email,
		})
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateToken(s.admin.Email, "admin", s.jwt.Secret, s.jwt.TokenExpiry)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return nil, err
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"email": s.admin.Email,
	})
	return &LoginResult{
		Token: token,
		Email: s.admin.Email,
		Role:  "admin",
	}, nil
}
