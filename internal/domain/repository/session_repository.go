package repository

import (
	"context"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// SessionRepository define el puerto de persistencia para las sesiones emitidas.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.UserSession) error
	// Deactivate marca inactiva la sesión cuyo hash coincida con el token presentado.
	Deactivate(ctx context.Context, userID, tokenHash string) error
}
