package service

import (
	"context"

	"arenaku/internal/provider"
	"arenaku/pkg/filter"
	"arenaku/pkg/logger"
	"arenaku/pkg/model"
	"arenaku/pkg/sanitizer"
)

// UserListQuery narrows the admin user table.
type UserListQuery struct {
	Query string
	Role  string
}

type AdminService interface {
	Summary(ctx context.Context) (*model.AdminSummary, error)
	Users(ctx context.Context, q UserListQuery) ([]model.User, error)
}

type adminService struct {
	admin provider.Admin
	log   *logger.Logger
}

func NewAdminService(admin provider.Admin, log *logger.Logger) AdminService {
	return &adminService{admin: admin, log: log}
}

func (s *adminService) Summary(ctx context.Context) (*model.AdminSummary, error) {
	return s.admin.Summary(ctx)
}

func (s *adminService) Users(ctx context.Context, q UserListQuery) ([]model.User, error) {
	users, err := s.admin.Users(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(users,
		filter.Text(sanitizer.NormalizeQuery(q.Query), func(u model.User) []string {
			return []string{u.Name, u.Email}
		}),
		filter.Status(q.Role, func(u model.User) string { return string(u.Role) }),
	), nil
}
