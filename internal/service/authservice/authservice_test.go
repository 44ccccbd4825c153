package authservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, time.Hour)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		uname         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			email:    " Alice@Example.com ",
			uname:    "alice",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashed", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					user.Active = true
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "alice@example.com",
				Uname:        "alice",
				PasswordHash: "hashed",
				Role:         domain.RoleUser,
				Active:       true,
			},
		},
		{
			name:          "Invalid email",
			email:         "alice",
			uname:         "alice",
			password:      "secret",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Empty password",
			email:         "alice@example.com",
			uname:         "alice",
			password:      "",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Password too long for bcrypt",
			email:         "alice@example.com",
			uname:         "alice",
			password:      strings.Repeat("p", 73),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:     "User already exists",
			email:    "alice@example.com",
			uname:    "alice",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name:     "Duplicate user name",
			email:    "alice@example.com",
			uname:    "alice",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("hashed", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, domain.ErrUserExists)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name:     "Error hashing password",
			email:    "alice@example.com",
			uname:    "alice",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("secret").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error finding user",
			email:    "alice@example.com",
			uname:    "alice",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.email, tt.uname, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	stored := &domain.User{ID: 1, Email: "alice@example.com", PasswordHash: "hashed", Role: domain.RoleUser, Active: true}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "secret").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "User not found",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Inactive user",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashed", "wrong").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Database error",
			password: "secret",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "alice@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "alice@example.com", tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)
	user := &domain.User{ID: 3, Role: domain.RoleAdmin}

	jwtService.EXPECT().GenerateJWT(3, domain.RoleAdmin, gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT(3, domain.RoleAdmin, gomock.Any()).Return("", errors.New("sign error"))
	_, err = service.GenerateToken(user)
	assert.Error(t, err)
}

func TestEnsureAdmin(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name        string
		email       string
		password    string
		prepareMock func()
		expectErr   bool
	}{
		{
			name:     "Creates admin",
			email:    "admin@example.com",
			password: "admin",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "admin@example.com").Return(nil, nil).Times(2)
				passwordHasher.EXPECT().HashPassword("admin").Return("hashed", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, domain.RoleAdmin, user.Role)
					user.ID = 1
					return user, nil
				})
			},
		},
		{
			name:     "Admin already exists",
			email:    "admin@example.com",
			password: "admin",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "admin@example.com").Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)
			},
		},
		{
			name:        "Not configured",
			prepareMock: func() {},
		},
		{
			name:     "Database error",
			email:    "admin@example.com",
			password: "admin",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "admin@example.com").Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.EnsureAdmin(context.Background(), tt.email, tt.password)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
