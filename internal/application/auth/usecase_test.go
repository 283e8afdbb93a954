package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffee-urbantech/pos-api/internal/application/auth"
	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/infrastructure/memory"
	pkgjwt "github.com/coffee-urbantech/pos-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase() *auth.AuthUseCase {
	store := memory.NewStore()
	return auth.NewAuthUseCase(memory.NewUserRepository(store), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pos-api-test",
	})
}

func TestRegisterUser_CreaUsuarioSinExponerHash(t *testing.T) {
	uc := newUseCase()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "cajero@urbantech.co",
		Password: "secreto123",
		Name:     "Cajero Uno",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "cajero@urbantech.co", out.Email)
	assert.Equal(t, entity.RoleVendedor, out.Role, "sin rol explícito queda como vendedor")
	assert.Equal(t, "active", out.Status)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := newUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.co", Password: "x1234567"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.co", Password: "otro1234"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_EntradaIncompleta(t *testing.T) {
	uc := newUseCase()

	_, err := uc.RegisterUser(dto.RegisterRequest{Password: "x1234567"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Login correcto devuelve un JWT cuyo claim de rol coincide con el usuario.
func TestLogin_DevuelveTokenConRol(t *testing.T) {
	uc := newUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "admin@urbantech.co",
		Password: "secreto123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@urbantech.co", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.co", Password: "correcto1"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.co", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@b.co", Password: "x1234567"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// userRepoFallando simula un store caído: toda consulta devuelve error.
type userRepoFallando struct {
	err error
}

func (r *userRepoFallando) Create(*entity.User) error                { return r.err }
func (r *userRepoFallando) GetByID(string) (*entity.User, error)     { return nil, r.err }
func (r *userRepoFallando) FindByEmail(string) (*entity.User, error) { return nil, r.err }

// Un fallo transitorio al verificar el email NO debe leerse como "email
// libre": el registro se aborta y el error sube al caller.
func TestRegisterUser_FalloAlVerificarEmailAborta(t *testing.T) {
	errStore := errors.New("store no disponible")
	uc := auth.NewAuthUseCase(&userRepoFallando{err: errStore}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pos-api-test",
	})

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.co", Password: "x1234567"})
	assert.ErrorIs(t, err, errStore)
}
