package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create registra el hash del token emitido.
func (r *SessionRepo) Create(ctx context.Context, session *entity.UserSession) error {
	query := `
		INSERT INTO user_sessions (id, user_id, token_hash, expires_at, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		session.ID, session.UserID, session.TokenHash,
		session.ExpiresAt, session.IsActive, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Deactivate marca inactiva la sesión del usuario cuyo hash coincida con el
// token presentado. No falla si no hay coincidencia.
func (r *SessionRepo) Deactivate(ctx context.Context, userID, tokenHash string) error {
	query := `
		UPDATE user_sessions
		SET is_active = false
		WHERE user_id = $1 AND token_hash = $2 AND is_active = true`
	_, err := r.q.Exec(ctx, query, userID, tokenHash)
	if err != nil {
		return fmt.Errorf("deactivate session: %w", err)
	}
	return nil
}
