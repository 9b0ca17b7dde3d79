package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"github.com/jhoicas/stampout-pos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL vigencia del registro de sesión, independiente de la del JWT.
const sessionTTL = 24 * time.Hour

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: login, validación de actor y logout.
type UseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, sessionRepo: sessionRepo, jwtCfg: jwtCfg}
}

// Login verifica credenciales contra el perfil activo, registra el login,
// emite el JWT y persiste el hash del token como sesión. Cualquier fallo de
// credenciales (usuario ausente, inactivo o password incorrecto) devuelve
// domain.ErrUnauthorized sin distinguir la causa.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.userRepo.GetProfileByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if err := uc.userRepo.UpdateLastLogin(ctx, profile.ID); err != nil {
		return nil, err
	}
	now := time.Now()
	profile.LastLogin = &now

	email := ""
	if profile.Email != nil {
		email = *profile.Email
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Payload{
		UserID:    profile.ID,
		Username:  profile.Username,
		Email:     email,
		CompanyID: profile.CompanyID,
		RoleID:    profile.RoleID,
		RoleName:  profile.Role.Name,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	session := &entity.UserSession{
		ID:        uuid.New().String(),
		UserID:    profile.ID,
		TokenHash: hashToken(token),
		ExpiresAt: now.Add(sessionTTL),
		IsActive:  true,
		CreatedAt: now,
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewAuthUserResponse(profile),
	}, nil
}

// Validate re-resuelve el perfil del usuario contra la base. Devuelve nil si
// el usuario ya no existe o fue desactivado: el middleware lo convierte en 401.
func (uc *UseCase) Validate(ctx context.Context, userID string) (*entity.AuthUser, error) {
	return uc.userRepo.GetProfileByID(ctx, userID)
}

// Logout desactiva la sesión correspondiente al token presentado. Es
// idempotente: un token ya desactivado o desconocido no produce error.
func (uc *UseCase) Logout(ctx context.Context, userID, token string) error {
	return uc.sessionRepo.Deactivate(ctx, userID, hashToken(token))
}

// hashToken digest determinístico del token para poder localizar la sesión
// por igualdad en SQL.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
