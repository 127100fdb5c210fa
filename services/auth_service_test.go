package services

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"grocery-api/config"
	"grocery-api/constants"
	"grocery-api/models"
	"grocery-api/repositories"
)

func setupAuthService(t *testing.T, cfg *config.Config) IAuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewAuthService(repositories.NewAuthRepository(db), cfg, logger)
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:       "test-secret",
		TokenTTLMinutes: 30,
	}
}

func TestSignupHashesPassword(t *testing.T) {
	service := setupAuthService(t, testConfig())

	user, err := service.Signup("a@x.com", "A", "pw")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "A", user.FullName)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, "pw", user.HashedPassword)
}

func TestSignupDuplicateEmail(t *testing.T) {
	service := setupAuthService(t, testConfig())

	_, err := service.Signup("a@x.com", "A", "pw")
	require.NoError(t, err)

	_, err = service.Signup("a@x.com", "B", "other")
	require.Error(t, err)
	assert.Equal(t, constants.ErrEmailRegistered, err.Error())
}

func TestLogin(t *testing.T) {
	service := setupAuthService(t, testConfig())

	_, err := service.Signup("a@x.com", "A", "pw")
	require.NoError(t, err)

	token, err := service.Login("a@x.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, *token)

	_, err = service.Login("a@x.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, constants.ErrIncorrectCredentials, err.Error())

	_, err = service.Login("nobody@x.com", "pw")
	require.Error(t, err)
	assert.Equal(t, constants.ErrIncorrectCredentials, err.Error())
}

func TestGetUserFromToken(t *testing.T) {
	service := setupAuthService(t, testConfig())

	_, err := service.Signup("a@x.com", "A", "pw")
	require.NoError(t, err)

	token, err := service.Login("a@x.com", "pw")
	require.NoError(t, err)

	user, err := service.GetUserFromToken(*token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestGetUserFromTokenMalformed(t *testing.T) {
	service := setupAuthService(t, testConfig())

	_, err := service.GetUserFromToken("not-a-token")
	assert.Error(t, err)
}

func TestGetUserFromTokenWrongSecret(t *testing.T) {
	service := setupAuthService(t, testConfig())

	_, err := service.Signup("a@x.com", "A", "pw")
	require.NoError(t, err)

	otherCfg := &config.Config{SecretKey: "other-secret", TokenTTLMinutes: 30}
	other := setupAuthService(t, otherCfg)
	token, err := other.(*AuthService).CreateToken("a@x.com")
	require.NoError(t, err)

	_, err = service.GetUserFromToken(*token)
	assert.Error(t, err)
}

func TestGetUserFromTokenExpired(t *testing.T) {
	expiredCfg := &config.Config{SecretKey: "test-secret", TokenTTLMinutes: -1}
	service := setupAuthService(t, expiredCfg)

	_, err := service.Signup("a@x.com", "A", "pw")
	require.NoError(t, err)

	token, err := service.(*AuthService).CreateToken("a@x.com")
	require.NoError(t, err)

	_, err = service.GetUserFromToken(*token)
	assert.Error(t, err)
}

func TestGetUserFromTokenUnknownSubject(t *testing.T) {
	service := setupAuthService(t, testConfig())

	token, err := service.(*AuthService).CreateToken("ghost@x.com")
	require.NoError(t, err)

	_, err = service.GetUserFromToken(*token)
	require.Error(t, err)
	assert.Equal(t, constants.ErrUserNotFound, err.Error())
}

// raceAuthRepository 事前チェック時点では未登録だが、INSERT時にユニーク制約で
// 弾かれる同時登録の敗者側を再現するリポジトリ
type raceAuthRepository struct {
	createErr error
}

func (r *raceAuthRepository) CreateUser(user models.User) (*models.User, error) {
	return nil, r.createErr
}

func (r *raceAuthRepository) FindUser(email string) (*models.User, error) {
	return nil, errors.New(constants.ErrUserNotFound)
}

func TestSignupConcurrentDuplicateMapsToEmailRegistered(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	tests := []struct {
		name      string
		createErr error
	}{
		{"sqlite", errors.New("UNIQUE constraint failed: users.email")},
		{"postgres", errors.New(`duplicate key value violates unique constraint "uni_users_email"`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAuthService(&raceAuthRepository{createErr: tt.createErr}, testConfig(), logger)

			_, err := service.Signup("a@x.com", "A", "pw")
			require.Error(t, err)
			assert.Equal(t, constants.ErrEmailRegistered, err.Error())
		})
	}
}

func TestSignupUnexpectedCreateError(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	service := NewAuthService(&raceAuthRepository{createErr: errors.New("connection reset")}, testConfig(), logger)

	_, err := service.Signup("a@x.com", "A", "pw")
	require.Error(t, err)
	assert.NotEqual(t, constants.ErrEmailRegistered, err.Error())
}
