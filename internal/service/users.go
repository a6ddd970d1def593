package service

import (
	"context"
	"time"

	"predictive-maintenance-backend/internal/model"
)

// GetUsers lists all users with passwords stripped.
func (s *Service) GetUsers(ctx context.Context) ([]model.User, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return nil, err
	}
	all := s.store.Users()
	out := make([]model.User, len(all))
	for i, u := range all {
		out[i] = u.Sanitized()
	}
	return out, nil
}

// GetUserByID returns one user, password stripped, or a NotFound error.
func (s *Service) GetUserByID(ctx context.Context, id int) (model.User, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return model.User{}, err
	}
	u, ok := s.store.UserByID(id)
	if !ok {
		return model.User{}, errUserNotFound
	}
	return u.Sanitized(), nil
}

// CreateUserInput is the caller-supplied part of a new user.
type CreateUserInput struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// CreateUser appends a user with defaults appropriate for a fresh account.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.User{}, err
	}
	role := in.Role
	if role == "" {
		role = model.RoleTechnician
	}
	company := s.store.Company()
	u := s.store.InsertUser(func(nextID int) model.User {
		return model.User{
			ID:         nextID,
			Name:       in.Name,
			Email:      in.Email,
			Password:   in.Password,
			Role:       role,
			FirstLogin: true,
			CompanyID:  company.ID,
			CreatedAt:  time.Now().UTC(),
		}
	})
	return u.Sanitized(), nil
}

// UserPatch is a shallow-merge update; nil fields are left unchanged.
type UserPatch struct {
	Name       *string     `json:"name"`
	Email      *string     `json:"email"`
	Role       *model.Role `json:"role"`
	Avatar     *string     `json:"avatar"`
	FirstLogin *bool       `json:"first_login"`
}

// UpdateUser shallow-merges the patch into the user with the given id and
// returns the sanitized result.
func (s *Service) UpdateUser(ctx context.Context, id int, patch UserPatch) (model.User, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.User{}, err
	}
	u, ok := s.store.UserByID(id)
	if !ok {
		return model.User{}, errUserNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.FirstLogin != nil {
		u.FirstLogin = *patch.FirstLogin
	}
	s.store.ReplaceUser(u)
	return u.Sanitized(), nil
}

// UpdateAvatar replaces a user's avatar.
func (s *Service) UpdateAvatar(ctx context.Context, id int, avatar string) (model.User, error) {
	return s.UpdateUser(ctx, id, UserPatch{Avatar: &avatar})
}

// DeleteUser removes a user or returns NotFound.
func (s *Service) DeleteUser(ctx context.Context, id int) error {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return err
	}
	if !s.store.DeleteUser(id) {
		return errUserNotFound
	}
	return nil
}

// GetCompanySettings returns the singleton company record.
func (s *Service) GetCompanySettings(ctx context.Context) (model.Company, error) {
	if err := s.delay(ctx, s.latency.Light); err != nil {
		return model.Company{}, err
	}
	return s.store.Company(), nil
}

// CompanyPatch is a shallow-merge update for the company settings.
type CompanyPatch struct {
	Name           *string `json:"name"`
	Timezone       *string `json:"timezone"`
	Language       *string `json:"language"`
	ServiceType    *string `json:"service_type"`
	Industry       *string `json:"industry"`
	SetupCompleted *bool   `json:"setup_completed"`
}

// UpdateCompanySettings shallow-merges the patch into the company record.
func (s *Service) UpdateCompanySettings(ctx context.Context, patch CompanyPatch) (model.Company, error) {
	if err := s.delay(ctx, s.latency.Medium); err != nil {
		return model.Company{}, err
	}
	c := s.store.Company()
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Timezone != nil {
		c.Timezone = *patch.Timezone
	}
	if patch.Language != nil {
		c.Language = *patch.Language
	}
	if patch.ServiceType != nil {
		c.ServiceType = *patch.ServiceType
	}
	if patch.Industry != nil {
		c.Industry = *patch.Industry
	}
	if patch.SetupCompleted != nil {
		c.SetupCompleted = *patch.SetupCompleted
	}
	s.store.SetCompany(c)
	return c, nil
}
