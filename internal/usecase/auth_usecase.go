package usecase

import (
	"context"
	"log"

	"jobhunt/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	AccessToken string
}

type AuthUsecase interface {
	Login(ctx context.Context, password string) (LoginResult, error)
}

// Auth guards the write endpoints with a single operator password.
type Auth struct {
	passwordHash []byte
	tokens       jwt.Service
	logger       *log.Logger
}

// NewAuthUsecase accepts either a precomputed bcrypt hash or a plain
// password to hash at startup. The hash wins when both are set.
func NewAuthUsecase(passwordHash, plainPassword string, tokens jwt.Service, logger *log.Logger) (*Auth, error) {
	hash := []byte(passwordHash)
	if len(hash) == 0 && plainPassword != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &Auth{passwordHash: hash, tokens: tokens, logger: logger}, nil
}

func (u *Auth) Login(_ context.Context, password string) (LoginResult, error) {
	if len(u.passwordHash) == 0 || password == "" {
		return LoginResult{}, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return LoginResult{}, ErrUnauthorized
	}

	token, err := u.tokens.GenerateAccessToken()
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Auth] Token generation failed err=%v", err)
		}
		return LoginResult{}, ErrInternal
	}
	return LoginResult{AccessToken: token}, nil
}
