package service

import (
	"context"
	"strings"

	"github.com/JamesLawwd/BITSA/internal/core/auth"
	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/pkg/utils"
)

type AuthService struct {
	users *repo.UserRepo
	jwt   *auth.JWTer
}

func NewAuthService(users *repo.UserRepo, jwt *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	StudentID string
	Phone     string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleStudent,
		StudentID:    in.StudentID,
		Phone:        in.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// Concurrent register with the same email loses to the unique index.
		if isDupKey(err) {
			return nil, "", domain.ErrDuplicateEmail
		}
		return nil, "", err
	}

	tok, err := s.jwt.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password so the status code does not leak which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	tok, err := s.jwt.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}
