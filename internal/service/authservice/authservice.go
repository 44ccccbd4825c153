package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/pkg/auth"
	"github.com/GlebRadaev/parking/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice
type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, email, uname, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	uname = strings.TrimSpace(uname)
	if !validate.IsEmail(email) || uname == "" || password == "" || len(password) > auth.MaxPasswordBytes {
		return nil, domain.ErrInvalidArgument
	}
	return s.create(ctx, email, uname, password, domain.RoleUser)
}

func (s *Service) create(ctx context.Context, email, uname, password, role string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, domain.ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:        email,
		Uname:        uname,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			zap.L().Error("can't create user: ", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email), zap.String("role", role))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil || !user.Active {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureAdmin creates the administrator account unless a user with the
// email already exists.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		zap.L().Warn("admin credentials are not configured, skipping admin seeding")
		return nil
	}
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role != domain.RoleAdmin {
			zap.L().Warn("admin email belongs to a regular user", zap.String("email", email))
		}
		return nil
	}
	_, err = s.create(ctx, email, "admin", password, domain.RoleAdmin)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}
