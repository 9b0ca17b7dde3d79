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

// PersonUseCase aplica reglas de negocio para personas. Las personas son un
// registro global, sin scoping por compañía.
type PersonUseCase struct {
	repo       repository.PersonRepository
	idTypeRepo repository.IdentificationTypeRepository
}

// NewPersonUseCase construye el caso de uso con sus puertos de persistencia.
func NewPersonUseCase(repo repository.PersonRepository, idTypeRepo repository.IdentificationTypeRepository) *PersonUseCase {
	return &PersonUseCase{repo: repo, idTypeRepo: idTypeRepo}
}

// Create crea una persona. El tipo de identificación debe existir activo y el
// par (tipo, número) ser único entre personas activas.
func (uc *PersonUseCase) Create(ctx context.Context, in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	idType, err := uc.idTypeRepo.GetByID(ctx, in.IdentificationTypeID)
	if err != nil {
		return nil, err
	}
	if idType == nil || !idType.IsActive {
		return nil, fmt.Errorf("%w: tipo de identificación", domain.ErrNotFound)
	}
	existing, err := uc.repo.GetByTypeAndNumber(ctx, in.IdentificationTypeID, in.IdentificationNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: identificationNumber", domain.ErrDuplicate)
	}
	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	person := &entity.Person{
		ID:                   uuid.New().String(),
		IdentificationTypeID: in.IdentificationTypeID,
		IdentificationNumber: in.IdentificationNumber,
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		Email:                in.Email,
		Phone:                in.Phone,
		Address:              in.Address,
		BirthDate:            birthDate,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(ctx, person); err != nil {
		return nil, err
	}
	out := dto.NewPersonResponse(person)
	return &out, nil
}

// GetByID obtiene una persona.
func (uc *PersonUseCase) GetByID(ctx context.Context, id string) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewPersonResponse(person)
	return &out, nil
}

// List lista personas con filtros y paginación.
func (uc *PersonUseCase) List(ctx context.Context, q dto.ListPersonsQuery) (*dto.ListResponse[dto.PersonResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.PersonFilter{
		ListParams:           params,
		IdentificationTypeID: q.IdentificationTypeID,
		IncludeType:          q.IncludeType,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		data = append(data, dto.NewPersonResponse(p))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente una persona. Revalida el tipo y la unicidad
// del par (tipo, número) cuando alguno cambia.
func (uc *PersonUseCase) Update(ctx context.Context, id string, in dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	typeID := current.IdentificationTypeID
	if in.IdentificationTypeID != nil {
		typeID = *in.IdentificationTypeID
		idType, err := uc.idTypeRepo.GetByID(ctx, typeID)
		if err != nil {
			return nil, err
		}
		if idType == nil || !idType.IsActive {
			return nil, fmt.Errorf("%w: tipo de identificación", domain.ErrNotFound)
		}
	}
	number := current.IdentificationNumber
	if in.IdentificationNumber != nil {
		number = *in.IdentificationNumber
	}
	if typeID != current.IdentificationTypeID || number != current.IdentificationNumber {
		existing, err := uc.repo.GetByTypeAndNumber(ctx, typeID, number)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: identificationNumber", domain.ErrDuplicate)
		}
	}
	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	person, err := uc.repo.Update(ctx, id, repository.PersonPatch{
		IdentificationTypeID: in.IdentificationTypeID,
		IdentificationNumber: in.IdentificationNumber,
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		Email:                in.Email,
		Phone:                in.Phone,
		Address:              in.Address,
		BirthDate:            birthDate,
		IsActive:             in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewPersonResponse(person)
	return &out, nil
}

// Remove desactiva una persona. Bloqueado mientras tenga un usuario activo.
func (uc *PersonUseCase) Remove(ctx context.Context, id string) error {
	person, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrNotFound
	}
	users, err := uc.repo.CountActiveUsers(ctx, id)
	if err != nil {
		return err
	}
	if users > 0 {
		return fmt.Errorf("%w: la persona tiene un usuario activo", domain.ErrConflict)
	}
	return uc.repo.SoftDelete(ctx, id)
}

// parseBirthDate interpreta la fecha de nacimiento YYYY-MM-DD del cuerpo.
func parseBirthDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("%w: birthDate", domain.ErrInvalidInput)
	}
	return &t, nil
}
