package session

import (
	"Matrafl-Backend/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	SessionRepository interface {
		CreateSession(ctx context.Context, session *entities.Session) error
		// GetSessionByHash ignores sessions created before notBefore.
		GetSessionByHash(ctx context.Context, tokenHash string, notBefore time.Time) (*entities.Session, error)
		DeleteSession(ctx context.Context, tokenHash string) error
		DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error)
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *entities.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetSessionByHash(ctx context.Context, tokenHash string, notBefore time.Time) (*entities.Session, error) {
	var session entities.Session
	if err := r.db.WithContext(ctx).
		Where("token_hash = ? AND created_at >= ?", tokenHash, notBefore).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&entities.Session{}).Error
}

func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&entities.Session{})
	return res.RowsAffected, res.Error
}
