// Package session issues opaque login tokens. Only the SHA-256 of a token is
// stored, so rows read from the database cannot be replayed as cookies.
package session

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"time"
)

const tokenBytes = 32

type (
	SessionService interface {
		CreateSession(ctx context.Context, userID string) (string, error)
		ResolveSession(ctx context.Context, token string) (string, error)
		DeleteSession(ctx context.Context, token string) error
		PurgeExpired(ctx context.Context, maxAgeDays int) (int64, error)
	}

	sessionService struct {
		sessionRepository SessionRepository
		maxAgeDays        int
		now               func() time.Time
	}
)

func NewSessionService(sessionRepository SessionRepository, maxAgeDays int) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		maxAgeDays:        maxAgeDays,
		now:               time.Now,
	}
}

func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func cutoff(now time.Time, maxAgeDays int) time.Time {
	return now.AddDate(0, 0, -maxAgeDays)
}

// CreateSession returns the plaintext token. It is not kept anywhere else.
func (s *sessionService) CreateSession(ctx context.Context, userID string) (string, error) {
	userUUID, err := domain.ParseUserID(userID)
	if err != nil {
		return "", err
	}

	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(raw)

	if err := s.sessionRepository.CreateSession(ctx, &entities.Session{
		TokenHash: HashToken(token),
		UserID:    userUUID,
		CreatedAt: s.now().UTC(),
	}); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// ResolveSession returns the user id behind token, or domain.ErrSessionRequired
// if the session is absent or older than the maximum age.
func (s *sessionService) ResolveSession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrSessionRequired
	}

	session, err := s.sessionRepository.GetSessionByHash(ctx, HashToken(token), cutoff(s.now().UTC(), s.maxAgeDays))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrSessionRequired
		}
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return session.UserID.String(), nil
}

func (s *sessionService) DeleteSession(ctx context.Context, token string) error {
	if err := s.sessionRepository.DeleteSession(ctx, HashToken(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired deletes every session older than maxAgeDays and reports how
// many went. Running it with nothing to delete is not an error.
func (s *sessionService) PurgeExpired(ctx context.Context, maxAgeDays int) (int64, error) {
	n, err := s.sessionRepository.DeleteExpiredSessions(ctx, cutoff(s.now().UTC(), maxAgeDays))
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return n, nil
}
