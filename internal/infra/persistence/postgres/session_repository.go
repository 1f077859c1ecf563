package postgres

import (
	"context"
	"time"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements repository.SessionRepository using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Find retrieves a session record by its storage key.
func (repo *sessionRepository) Find(ctx context.Context, id entity.SessionID) (*entity.SessionRecord, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).First(&sessionM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "failed to find session")
	}
	return &entity.SessionRecord{
		ID:        sessionM.ID,
		Data:      sessionM.Data,
		ExpiresAt: sessionM.ExpiresAt,
	}, nil
}

// Save inserts or replaces a session record.
func (repo *sessionRepository) Save(ctx context.Context, record *entity.SessionRecord) error {
	sessionM := &model.SessionModel{
		ID:        record.ID,
		Data:      record.Data,
		ExpiresAt: record.ExpiresAt.UTC(),
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
	}).Create(sessionM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save session")
	}
	return nil
}

// Delete removes a session record.
func (repo *sessionRepository) Delete(ctx context.Context, id entity.SessionID) error {
	err := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}
	return nil
}

// DeleteExpired removes all records whose expiry has passed.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}
	return result.RowsAffected, nil
}
