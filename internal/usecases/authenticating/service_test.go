package authenticating_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository/memory"
	"github.com/jcarlosamorim/consultoria-api/internal/config"
	"github.com/jcarlosamorim/consultoria-api/internal/domain"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/authenticating"
)

func newTestAuthenticator(t *testing.T) (authenticating.Authenticator, *memory.UserStore) {
	t.Helper()

	store := memory.NewUserStore()
	cfg := &config.Config{
		Auth: config.Auth{SecretKey: "segredo-de-teste", TokenTTLHours: 1},
	}

	return authenticating.NewService(store, cfg), store
}

func createActiveUser(t *testing.T, service authenticating.Authenticator, store *memory.UserStore, email, password string) *domain.User {
	t.Helper()

	user, err := service.CreateUser(&domain.User{
		Name:         "Ana",
		Lastname:     "Costa",
		Email:        email,
		PasswordHash: password,
	})
	require.NoError(t, err)

	// Novos usuários nascem inativos e precisam de ativação manual
	stored, err := store.GetUserByID(user.ID)
	require.NoError(t, err)
	stored.Active = true
	require.NoError(t, store.UpdateUser(stored))

	return stored
}

func TestCreateUserHashesPassword(t *testing.T) {
	service, store := newTestAuthenticator(t)

	user, err := service.CreateUser(&domain.User{
		Name:         "Ana",
		Lastname:     "Costa",
		Email:        "Ana.Costa@Exemplo.com ",
		PasswordHash: "senha123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana.costa@exemplo.com", user.Email)
	assert.NotEqual(t, "senha123", user.PasswordHash)
	assert.False(t, user.Active)
	assert.Equal(t, 3, user.RoleID)

	stored, err := store.GetUserByEmail("ana.costa@exemplo.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestCreateUserRejectsMissingData(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	user, err := service.CreateUser(&domain.User{Name: "Ana"})
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, authenticating.ErrMissingRequiredData))
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	_, err := service.CreateUser(&domain.User{
		Name: "Ana", Lastname: "Costa", Email: "ana@exemplo.com", PasswordHash: "senha123",
	})
	require.NoError(t, err)

	user, err := service.CreateUser(&domain.User{
		Name: "Outra", Lastname: "Ana", Email: "ANA@exemplo.com", PasswordHash: "outra123",
	})
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, authenticating.ErrUserAlreadyExists))
}

func TestLoginUser(t *testing.T) {
	service, store := newTestAuthenticator(t)
	createActiveUser(t, service, store, "ana@exemplo.com", "senha123")

	token, err := service.LoginUser("ana@exemplo.com", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@exemplo.com", claims.UserEmail)
	assert.Equal(t, "Ana", claims.UserName)
	assert.True(t, claims.UserActive)
}

func TestLoginUserWrongPassword(t *testing.T) {
	service, store := newTestAuthenticator(t)
	createActiveUser(t, service, store, "ana@exemplo.com", "senha123")

	token, err := service.LoginUser("ana@exemplo.com", "errada")
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, authenticating.ErrInvalidCredentials))
	assert.True(t, authenticating.IsCredentialsError(err))
}

func TestLoginUserUnknownEmail(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	token, err := service.LoginUser("ninguem@exemplo.com", "senha123")
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, authenticating.ErrUserNotFound))
}

func TestLoginUserInactiveAccount(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	_, err := service.CreateUser(&domain.User{
		Name: "Ana", Lastname: "Costa", Email: "ana@exemplo.com", PasswordHash: "senha123",
	})
	require.NoError(t, err)

	token, err := service.LoginUser("ana@exemplo.com", "senha123")
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, authenticating.ErrUserDisabled))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	claims, err := service.ValidateToken("nao-e-um-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	service, store := newTestAuthenticator(t)
	createActiveUser(t, service, store, "ana@exemplo.com", "senha123")

	token, err := service.LoginUser("ana@exemplo.com", "senha123")
	require.NoError(t, err)

	otherStore := memory.NewUserStore()
	otherService := authenticating.NewService(otherStore, &config.Config{
		Auth: config.Auth{SecretKey: "outro-segredo"},
	})

	claims, err := otherService.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestGetUserProfileOmitsPasswordHash(t *testing.T) {
	service, store := newTestAuthenticator(t)
	user := createActiveUser(t, service, store, "ana@exemplo.com", "senha123")

	profile, err := service.GetUserProfile(user.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.PasswordHash)
	assert.Equal(t, "Ana", profile.Name)
}

func TestGetUserProfileUnknownUser(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	profile, err := service.GetUserProfile(999)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, authenticating.ErrUserNotFound))
}
