package service

import (
	"context"

	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
)

type UserService struct {
	users *repo.UserRepo
}

func NewUserService(users *repo.UserRepo) *UserService { return &UserService{users: users} }

type ProfileUpdate struct {
	Name      string
	Phone     string
	Bio       string
	StudentID string
	Avatar    string
}

// UpdateProfile applies only the provided fields. Email, role and password
// are not reachable here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.Bio != "" {
		u.Bio = in.Bio
	}
	if in.StudentID != "" {
		u.StudentID = in.StudentID
	}
	if in.Avatar != "" {
		u.Avatar = in.Avatar
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
