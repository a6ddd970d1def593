package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"predictive-maintenance-backend/internal/model"
)

// LoginResult is what a successful login returns: the user without its
// password, plus an opaque session token.
type LoginResult struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// Login checks the email/password pair against the seeded users. The token is
// a mock value with no cryptographic meaning; the adapter and frontend treat
// it as opaque.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return LoginResult{}, err
	}
	u, ok := s.store.UserByEmail(email)
	if !ok || u.Password != password {
		s.log.Info("login rejected", zap.String("email", email))
		return LoginResult{}, ErrInvalidCredentials
	}
	return LoginResult{
		User:  u.Sanitized(),
		Token: "mock-token-" + uuid.NewString(),
	}, nil
}
