package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
)

// RoleUseCase aplica reglas de negocio para roles. La administración es
// exclusiva de "Super Admin" y los roles del sistema no pueden eliminarse.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol. Solo "Super Admin"; nombre único.
func (uc *RoleUseCase) Create(ctx context.Context, actor *entity.AuthUser, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if !actor.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Permissions: in.Permissions,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	out := dto.NewRoleResponse(role)
	return &out, nil
}

// GetByID obtiene un rol.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewRoleResponse(role)
	return &out, nil
}

// List lista roles con filtros y paginación.
func (uc *RoleUseCase) List(ctx context.Context, q dto.ListRolesQuery) (*dto.ListResponse[dto.RoleResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.RoleFilter{
		ListParams:   params,
		IncludeStats: q.IncludeStats,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		data = append(data, dto.NewRoleResponse(r))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente un rol. Solo "Super Admin". Renombrar un rol
// del sistema no está permitido.
func (uc *RoleUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	if !actor.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != current.Name {
		if entity.IsSystemRole(current.Name) {
			return nil, fmt.Errorf("%w: los roles del sistema no se renombran", domain.ErrConflict)
		}
		existing, err := uc.repo.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
		}
	}
	role, err := uc.repo.Update(ctx, id, repository.RolePatch{
		Name:        in.Name,
		Description: in.Description,
		Permissions: in.Permissions,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewRoleResponse(role)
	return &out, nil
}

// Remove desactiva un rol. Solo "Super Admin"; los roles del sistema están
// protegidos y un rol con usuarios activos bloquea la operación.
func (uc *RoleUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	if !actor.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	if entity.IsSystemRole(role.Name) {
		return fmt.Errorf("%w: rol del sistema", domain.ErrConflict)
	}
	users, err := uc.repo.CountActiveUsers(ctx, id)
	if err != nil {
		return err
	}
	if users > 0 {
		return fmt.Errorf("%w: el rol tiene usuarios activos", domain.ErrConflict)
	}
	return uc.repo.SoftDelete(ctx, id)
}
