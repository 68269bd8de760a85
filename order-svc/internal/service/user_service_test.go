package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/mocks"
	"feastly/order-svc/internal/service"
)

func TestBcryptHasher(t *testing.T) {
	h := service.BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, h.Compare(hash, "s3cret"))
	assert.False(t, h.Compare(hash, "wrong"))
}

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.UserRepository, hasher *mocks.PasswordHasher)
		wantErr  error
	}{
		{
			name:     "new user",
			email:    "ada@example.com",
			password: "pw",
			setup: func(repo *mocks.UserRepository, hasher *mocks.PasswordHasher) {
				repo.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(nil, domain.ErrNotFound).Once()
				hasher.On("Hash", "pw").Return("hashed", nil).Once()
				repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.ID != "" && u.PasswordHash == "hashed" && u.Email == "ada@example.com"
				})).Return(nil).Once()
			},
		},
		{
			name:     "duplicate email",
			email:    "ada@example.com",
			password: "pw",
			setup: func(repo *mocks.UserRepository, hasher *mocks.PasswordHasher) {
				repo.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(&domain.User{ID: "u-1"}, nil).Once()
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:     "missing password",
			email:    "ada@example.com",
			password: "",
			setup:    func(*mocks.UserRepository, *mocks.PasswordHasher) {},
			wantErr:  domain.ErrValidation,
		},
		{
			name:     "lookup failure",
			email:    "ada@example.com",
			password: "pw",
			setup: func(repo *mocks.UserRepository, hasher *mocks.PasswordHasher) {
				repo.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewUserRepository(t)
			hasher := mocks.NewPasswordHasher(t)
			testCase.setup(repo, hasher)
			svc := service.NewUserService(repo, hasher)

			user, err := svc.Signup(context.Background(), "Ada", testCase.email, testCase.password)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ada", user.Name)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *mocks.UserRepository, hasher *mocks.PasswordHasher)
		wantErr error
	}{
		{
			name: "valid credentials",
			setup: func(repo *mocks.UserRepository, hasher *mocks.PasswordHasher) {
				repo.On("GetUserByEmail", mock.Anything, "ada@example.com").
					Return(&domain.User{ID: "u-1", Name: "Ada", PasswordHash: "hashed"}, nil).Once()
				hasher.On("Compare", "hashed", "pw").Return(true).Once()
			},
		},
		{
			name: "unknown email",
			setup: func(repo *mocks.UserRepository, hasher *mocks.PasswordHasher) {
				repo.On("GetUserByEmail", mock.Anything, "ada@example.com").Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name: "wrong password",
			setup: func(repo *mocks.UserRepository, hasher *mocks.PasswordHasher) {
				repo.On("GetUserByEmail", mock.Anything, "ada@example.com").
					Return(&domain.User{ID: "u-1", PasswordHash: "hashed"}, nil).Once()
				hasher.On("Compare", "hashed", "pw").Return(false).Once()
			},
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewUserRepository(t)
			hasher := mocks.NewPasswordHasher(t)
			testCase.setup(repo, hasher)
			svc := service.NewUserService(repo, hasher)

			user, err := svc.Login(context.Background(), "ada@example.com", "pw")
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", user.ID)
		})
	}
}
