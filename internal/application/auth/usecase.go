package auth

import (
	"github.com/google/uuid"
	"github.com/sclconsulting/inventario-api/internal/application/dto"
	"github.com/sclconsulting/inventario-api/internal/domain"
	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	"github.com/sclconsulting/inventario-api/internal/domain/repository"
	"github.com/sclconsulting/inventario-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtOpts  jwt.Options
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtOpts jwt.Options) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtOpts: jwtOpts}
}

// Register crea un usuario: valida unicidad de username y email, hashea el
// password con bcrypt y persiste. Los usuarios nuevos nacen activos.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Email != nil && *in.Email != "" {
		byEmail, err := uc.userRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if byEmail != nil {
			return nil, domain.ErrDuplicate
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password y genera el JWT.
// Usuario inexistente y password incorrecto devuelven el mismo error:
// el caller nunca distingue cuál falló. Cuenta inactiva es un error aparte.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	// Un hash corrupto también cae aquí: bcrypt devuelve error y el login falla.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtOpts, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// SetActive activa o desactiva una cuenta. Desactivar revoca el acceso de
// inmediato: el middleware rechaza tokens vigentes de cuentas inactivas.
// Devuelve nil si el usuario no existe.
func (uc *AuthUseCase) SetActive(userID string, active bool) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	user.IsActive = active
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// CurrentUser resuelve el usuario del token (para el middleware de auth).
func (uc *AuthUseCase) CurrentUser(userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(userID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}
