package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetcare/petclinic-pro/internal/application/auth"
	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/domain"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User // por ID
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (m *memUserRepo) Create(u *entity.User) error { cp := *u; m.users[u.ID] = &cp; return nil }
func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}
func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type memPermRepo struct {
	grants map[string][]string
}

func newMemPermRepo() *memPermRepo { return &memPermRepo{grants: map[string][]string{}} }

func (m *memPermRepo) Grant(userID string, slugs []string) error {
	m.grants[userID] = append(m.grants[userID], slugs...)
	return nil
}
func (m *memPermRepo) ListByUser(userID string) ([]string, error) {
	return m.grants[userID], nil
}

func newAuthUseCase() (*auth.AuthUseCase, *memUserRepo, *memPermRepo) {
	users := newMemUserRepo()
	perms := newMemPermRepo()
	uc := auth.NewAuthUseCase(users, perms, auth.JWTConfig{
		Secret:     "clave-de-prueba",
		ExpMinutes: 15,
		Issuer:     "petclinic-pro",
	})
	return uc, users, perms
}

func TestRegister_HasheaPasswordYOtorgaPermisosBase(t *testing.T) {
	uc, users, perms := newAuthUseCase()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreta1",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)

	stored := users.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta1", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta1")))
	assert.ElementsMatch(t, entity.DefaultUserPermissions(), perms.grants[out.ID])
}

func TestRegister_EmailDuplicado_Conflict(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta1", Name: "Ana"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "otra1234", Name: "Ana B"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// El token del login lleva rol y permisos: el núcleo de autorización decide
// con lo que viaja en los claims, sin volver a la DB.
func TestLogin_TokenLlevaRolYPermisos(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	reg, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta1", Name: "Ana"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)

	claims, err := jwt.Parse("clave-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.ElementsMatch(t, entity.DefaultUserPermissions(), claims.Permissions)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta1", Name: "Ana"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_Unauthorized(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
