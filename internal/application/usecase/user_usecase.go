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
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost costo de hashing para contraseñas de usuarios.
const bcryptCost = 10

// UserUseCase aplica reglas de negocio para cuentas de usuario.
type UserUseCase struct {
	repo        repository.UserRepository
	personRepo  repository.PersonRepository
	companyRepo repository.CompanyRepository
	roleRepo    repository.RoleRepository
}

// NewUserUseCase construye el caso de uso con sus puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, personRepo repository.PersonRepository, companyRepo repository.CompanyRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, personRepo: personRepo, companyRepo: companyRepo, roleRepo: roleRepo}
}

// Create crea un usuario en la compañía efectiva del actor. Reglas: persona
// existente, activa y sin otro usuario activo; compañía y rol existentes y
// activos; username único. La contraseña se almacena con bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, actor *entity.AuthUser, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	companyID := actor.ResolveCompanyID(in.CompanyID)

	person, err := uc.personRepo.GetByID(ctx, in.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil || !person.IsActive {
		return nil, fmt.Errorf("%w: persona", domain.ErrNotFound)
	}
	taken, err := uc.repo.GetActiveByPersonID(ctx, in.PersonID)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, fmt.Errorf("%w: la persona ya tiene un usuario activo", domain.ErrConflict)
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID, "", false)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsActive {
		return nil, fmt.Errorf("%w: compañía", domain.ErrNotFound)
	}
	role, err := uc.roleRepo.GetByID(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil || !role.IsActive {
		return nil, fmt.Errorf("%w: rol", domain.ErrNotFound)
	}

	existing, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username", domain.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		PersonID:     in.PersonID,
		CompanyID:    companyID,
		RoleID:       in.RoleID,
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// GetByID obtiene un usuario visible para el actor.
func (uc *UserUseCase) GetByID(ctx context.Context, actor *entity.AuthUser, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id, actor.ScopeFilter())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// List lista usuarios visibles para el actor con filtros y paginación.
func (uc *UserUseCase) List(ctx context.Context, actor *entity.AuthUser, q dto.ListUsersQuery) (*dto.ListResponse[dto.UserResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.UserFilter{
		ListParams:     params,
		ScopeCompanyID: actor.ScopeFilter(),
		CompanyID:      q.CompanyID,
		RoleID:         q.RoleID,
		IncludeDetails: q.IncludeDetails,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		data = append(data, dto.NewUserResponse(u))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente un usuario del scope del actor. Revalida
// persona (incluida la regla 1:1), rol y unicidad de username cuando cambian;
// una contraseña nueva se rehashea.
func (uc *UserUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	current, err := uc.repo.GetByID(ctx, id, actor.ScopeFilter())
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if in.PersonID != nil && *in.PersonID != current.PersonID {
		person, err := uc.personRepo.GetByID(ctx, *in.PersonID)
		if err != nil {
			return nil, err
		}
		if person == nil || !person.IsActive {
			return nil, fmt.Errorf("%w: persona", domain.ErrNotFound)
		}
		taken, err := uc.repo.GetActiveByPersonID(ctx, *in.PersonID)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != id {
			return nil, fmt.Errorf("%w: la persona ya tiene un usuario activo", domain.ErrConflict)
		}
	}
	if in.RoleID != nil && *in.RoleID != current.RoleID {
		role, err := uc.roleRepo.GetByID(ctx, *in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil || !role.IsActive {
			return nil, fmt.Errorf("%w: rol", domain.ErrNotFound)
		}
	}
	if in.Username != nil && *in.Username != current.Username {
		existing, err := uc.repo.GetByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: username", domain.ErrDuplicate)
		}
	}
	var passwordHash *string
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		passwordHash = &h
	}
	user, err := uc.repo.Update(ctx, id, repository.UserPatch{
		PersonID:     in.PersonID,
		RoleID:       in.RoleID,
		Username:     in.Username,
		PasswordHash: passwordHash,
		Email:        in.Email,
		IsActive:     in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Remove desactiva un usuario del scope del actor. Nadie puede eliminar su
// propia cuenta.
func (uc *UserUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	if id == actor.ID {
		return fmt.Errorf("%w: no puedes eliminar tu propia cuenta", domain.ErrConflict)
	}
	user, err := uc.repo.GetByID(ctx, id, actor.ScopeFilter())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}
