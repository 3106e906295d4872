package service

import (
	"testing"
	"time"

	"github.com/msolera/catalog-backend/config"
	"github.com/msolera/catalog-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	hash, err := util.HashPassword("correct-horse")
	require.NoError(t, err)

	return NewAuthService(
		config.AdminConfig{
			Email:        "admin@example.com",
			PasswordHash: hash,
		},
		config.JWTConfig{
			Secret:      "test-jwt-secret",
			TokenExpiry: 12 * time.Hour,
		},
	)
}

func TestAuthService_Login(t *testing.T) {
	authService := setupAuthServiceTest(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			email:    "admin@example.com",
			password: "correct-horse",
			wantErr:  nil,
		},
		{
			name:     "Email is case insensitive",
			email:    "Admin@Example.COM",
			password: "correct-horse",
			wantErr:  nil,
		},
		{
			name:     "Wrong password",
			email:    "admin@example.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "intruder@example.com",
			password: "correct-horse",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, "admin@example.com", result.Email)
			assert.Equal(t, "admin", result.Role)

			claims, err := util.ValidateToken(result.Token, "test-jwt-secret")
			require.NoError(t, err)
			assert.Equal(t, "admin@example.com", claims.Email)
			assert.Equal(t, "admin", claims.Role)
		})
	}
}
