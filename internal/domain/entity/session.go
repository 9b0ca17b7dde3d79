package entity

import "time"

// UserSession registro de un token emitido: se persiste el hash del token con
// su expiración para poder invalidarlo en el logout. No hay barrido de
// sesiones vencidas; quedan hasta que un logout las desactive.
type UserSession struct {
	ID        string
	UserID    string
	TokenHash string // SHA-256 hex del token emitido
	ExpiresAt time.Time
	IsActive  bool
	CreatedAt time.Time
}
