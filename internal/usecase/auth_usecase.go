package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aravhawk/vetpath/internal/config"
	"github.com/aravhawk/vetpath/internal/pkg/jwt"
)

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (string, error)
}

// Auth authenticates the single admin account configured at startup.
type Auth struct {
	cfg     config.AuthConfig
	jwt     jwt.Service
	adminID uuid.UUID
}

func NewAuthUsecase(cfg config.AuthConfig, jwtSvc jwt.Service) *Auth {
	return &Auth{cfg: cfg, jwt: jwtSvc, adminID: uuid.New()}
}

func (u *Auth) Login(_ context.Context, in LoginInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return "", ErrUnauthorized
	}
	if email != strings.ToLower(u.cfg.AdminEmail) {
		return "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.AdminPasswordHash), []byte(in.Password)); err != nil {
		return "", ErrUnauthorized
	}

	token, err := u.jwt.GenerateAccessToken(u.adminID, email)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}
