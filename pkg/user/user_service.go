package user

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"Matrafl-Backend/pkg/session"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
	"sync"
	"time"
)

const (
	loginBurst  = 5
	loginRefill = 12 * time.Second
)

type (
	UserService interface {
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		GetUserByUsername(ctx context.Context, username string) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (string, error)
	}

	userService struct {
		userRepository UserRepository
		sessionService session.SessionService
		hasher         PasswordHasher
		logger         *zap.Logger
		now            func() time.Time

		// failed attempts per username
		limiters sync.Map
	}
)

func NewUserService(userRepository UserRepository, sessionService session.SessionService, hasher PasswordHasher, logger *zap.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		sessionService: sessionService,
		hasher:         hasher,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, fmt.Errorf("get user: %w", err)
	}

	hash, err := s.hasher.HashPassword(ctx, req.Password)
	if err != nil {
		return domain.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	u := &entities.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: hash,
		Timestamp:    entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepository.CreateUser(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrUsernameTaken
		}
		return domain.UserResponse{}, fmt.Errorf("create user: %w", err)
	}
	return domain.UserResponse{ID: u.ID.String(), Username: u.Username}, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (domain.UserResponse, error) {
	u, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, fmt.Errorf("get user: %w", err)
	}
	return domain.UserResponse{ID: u.ID.String(), Username: u.Username}, nil
}

// Login verifies the credentials and opens a session, returning its token.
// Unknown user, wrong password, corrupt stored hash and throttling all come
// back as domain.ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	limiter := s.limiter(req.Username)
	if limiter.Tokens() < 1 {
		s.logger.Warn("login throttled", zap.String("username", req.Username))
		return "", domain.ErrInvalidCredentials
	}

	u, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			limiter.Allow()
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := s.hasher.VerifyPassword(ctx, req.Password, u.PasswordHash); err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedHash):
			s.logger.Error("stored password hash is malformed", zap.String("user_id", u.ID.String()))
		case !errors.Is(err, domain.ErrPasswordMismatch):
			return "", fmt.Errorf("verify password: %w", err)
		}
		limiter.Allow()
		return "", domain.ErrInvalidCredentials
	}

	return s.sessionService.CreateSession(ctx, u.ID.String())
}

func (s *userService) limiter(username string) *rate.Limiter {
	l, _ := s.limiters.LoadOrStore(username, rate.NewLimiter(rate.Every(loginRefill), loginBurst))
	return l.(*rate.Limiter)
}
