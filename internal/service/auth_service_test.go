package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"softdesk/internal/auth"
	apperrors "softdesk/internal/errors"
	"softdesk/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		input     RegisterInput
		setupMock func(*MockUserRepository)
		checkErr  func(*testing.T, error)
	}{
		{
			name: "successful registration",
			input: RegisterInput{
				Username:       "alice",
				Email:          "alice@example.com",
				Password:       "password123",
				Age:            30,
				CanBeContacted: true,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name: "underage signup is a field validation error",
			input: RegisterInput{
				Username: "kid",
				Email:    "kid@example.com",
				Password: "password123",
				Age:      14,
			},
			setupMock: func(m *MockUserRepository) {},
			checkErr: func(t *testing.T, err error) {
				var validation *apperrors.ValidationError
				assert.ErrorAs(t, err, &validation)
				assert.Equal(t, "age", validation.Field)
			},
		},
		{
			name: "username already taken",
			input: RegisterInput{
				Username: "alice",
				Email:    "other@example.com",
				Password: "password123",
				Age:      25,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				var conflict *apperrors.ConflictError
				assert.ErrorAs(t, err, &conflict)
			},
		},
		{
			name: "loser of a concurrent signup race gets conflict",
			input: RegisterInput{
				Username: "bob",
				Email:    "bob@example.com",
				Password: "password123",
				Age:      25,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "bob").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			checkErr: func(t *testing.T, err error) {
				var conflict *apperrors.ConflictError
				assert.ErrorAs(t, err, &conflict)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, new(MockTokenStore))

			user, err := service.Register(context.Background(), tt.input)

			if tt.checkErr != nil {
				assert.Error(t, err)
				tt.checkErr(t, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.input.Username, user.Username)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: string(hashedPassword),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "alice", auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "nope",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "alice")
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "alice", nil)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)

		accessToken, err := service.RefreshToken(context.Background(), refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)

		claims, err := jwtService.ValidateToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))

		_, err := service.RefreshToken(context.Background(), "not-a-token")
		assert.Equal(t, ErrInvalidRefreshToken, err)
	})

	t.Run("token missing from the store is rejected", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "alice")
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)

		_, err = service.RefreshToken(context.Background(), refreshToken)
		assert.Equal(t, ErrInvalidRefreshToken, err)
		mockTokenStore.AssertExpectations(t)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "alice")
	assert.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)

	assert.NoError(t, service.Logout(context.Background(), refreshToken))
	mockTokenStore.AssertExpectations(t)
}
