package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/expanda/catalog-api/internal/application/dto"
	"github.com/expanda/catalog-api/internal/domain"
	"github.com/expanda/catalog-api/internal/domain/entity"
	"github.com/expanda/catalog-api/internal/domain/repository"
	"github.com/expanda/catalog-api/pkg/jwt"
	"github.com/expanda/catalog-api/pkg/logger"
	"github.com/expanda/catalog-api/pkg/textutil"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, jwtCfg: jwtCfg, log: log}
}

// Register crea un usuario: valida unicidad del username, hashea el password
// con bcrypt y asigna un rol (por defecto "User"), creando el rol en el
// catálogo si aún no existe. Nunca devuelve el hash.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || len(strings.TrimSpace(in.Password)) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(textutil.Fold(username))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	roleName := in.Role
	if roleName == "" {
		roleName = entity.RoleUser
	}
	if err := uc.ensureRole(roleName); err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         roleName,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password y genera el JWT con claims
// {sub=id, username, role}. Todas las rutas de fallo colapsan en
// domain.ErrUnauthorized: el motivo concreto solo queda en el log del servidor.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		uc.log.Warn().Msg("login: credenciales vacías")
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsername(textutil.Fold(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Str("username", in.Username).Msg("login: usuario no existe")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("username", in.Username).Msg("login: password incorrecto")
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		User:    toUserResponse(user),
		Message: "login exitoso",
	}, nil
}

// GetByID obtiene los datos públicos de un usuario. (nil, nil) si no existe.
func (uc *AuthUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista los datos públicos de todos los usuarios.
func (uc *AuthUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// ensureRole crea el rol en el catálogo de roles si no existe todavía.
func (uc *AuthUseCase) ensureRole(name string) error {
	role, err := uc.roleRepo.GetByName(name)
	if err != nil {
		return err
	}
	if role != nil {
		return nil
	}
	err = uc.roleRepo.Create(&entity.Role{
		Name:        name,
		Description: "creado automáticamente en el registro",
		IsActive:    true,
		CreatedAt:   time.Now(),
	})
	// Otra petición pudo crearlo en paralelo
	if err == domain.ErrDuplicate {
		return nil
	}
	return err
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
