package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// PersonPatch campos opcionales para actualización parcial de una persona.
type PersonPatch struct {
	IdentificationTypeID *string
	IdentificationNumber *string
	FirstName            *string
	LastName             *string
	Email                *string
	Phone                *string
	Address              *string
	BirthDate            *time.Time
	IsActive             *bool
}

// IsZero informa si el patch no trae ningún campo.
func (p PersonPatch) IsZero() bool {
	return p.IdentificationTypeID == nil && p.IdentificationNumber == nil &&
		p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Phone == nil && p.Address == nil && p.BirthDate == nil && p.IsActive == nil
}

// PersonRepository define el puerto de persistencia para Person.
type PersonRepository interface {
	Create(ctx context.Context, person *entity.Person) error
	GetByID(ctx context.Context, id string) (*entity.Person, error)
	// GetByTypeAndNumber busca una persona activa con ese tipo y número de identificación.
	GetByTypeAndNumber(ctx context.Context, identificationTypeID, identificationNumber string) (*entity.Person, error)
	List(ctx context.Context, f PersonFilter) ([]*entity.Person, int, error)
	Update(ctx context.Context, id string, p PersonPatch) (*entity.Person, error)
	CountActiveUsers(ctx context.Context, id string) (int, error)
	SoftDelete(ctx context.Context, id string) error
}
