package service

import (
	"context"
	"errors"

	"Community_API/internal/model"
	"Community_API/internal/pagination"
	"Community_API/internal/pkg"
	"Community_API/internal/repository/store"
)

type RoleService struct {
	roles *store.RoleRepository
}

func NewRoleService(roles *store.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

// EnsureDefaults 启动时调用，幂等
func (s *RoleService) EnsureDefaults(ctx context.Context) error {
	return s.roles.EnsureRoles(ctx, model.DefaultRoles())
}

func (s *RoleService) Create(ctx context.Context, name string, scopes []string) (*model.Role, error) {
	name, err := pkg.TrimName(name)
	if err != nil {
		return nil, err
	}

	_, err = s.roles.FindByName(ctx, name)
	if err == nil {
		return nil, roleExists()
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if scopes == nil {
		scopes = []string{}
	}
	role := &model.Role{Name: name, Scopes: scopes}
	if err := s.roles.Create(ctx, role); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, roleExists()
		}
		return nil, err
	}
	return role, nil
}

func roleExists() *pkg.AppError {
	return pkg.ErrResourceExists("name", "Role with this name already exists.")
}

func (s *RoleService) List(ctx context.Context, req pagination.Request) (*pagination.Page[model.Role], error) {
	return pagination.Paginate(ctx, s.roles.All(), req)
}
