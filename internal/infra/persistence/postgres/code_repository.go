package postgres

import (
	"context"
	"time"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// codeRepository implements repository.CodeRepository using GORM. It owns the
// email-to-digest mapping so callers work with plaintext addresses only.
type codeRepository struct {
	db       *gorm.DB
	digester service.Digester
}

// NewCodeRepository is the constructor for codeRepository.
func NewCodeRepository(db *gorm.DB, digester service.Digester) repository.CodeRepository {
	return &codeRepository{db: db, digester: digester}
}

// FindByEmailDigest retrieves the current code for an address.
func (repo *codeRepository) FindByEmailDigest(ctx context.Context, digest string) (*entity.VerificationCode, error) {
	var codeM model.VerificationCodeModel
	if err := repo.db.WithContext(ctx).First(&codeM, "email_digest = ?", digest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}
		return nil, errors.Wrap(err, "failed to find verification code")
	}
	return toCodeDomain(&codeM), nil
}

// Save inserts or replaces the code row for its address. The replace is a
// single upsert on the digest key, so a concurrent create cannot leave two
// rows for one address.
func (repo *codeRepository) Save(ctx context.Context, code *entity.VerificationCode) error {
	codeM := fromCodeDomain(code, repo.digester.DigestEmail(code.Email))

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email_digest"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "value", "count", "attempts", "issued_at", "expires_at", "cooldown", "session_id", "updated_at",
		}),
	}).Create(codeM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save verification code")
	}

	code.ID = codeM.ID
	return nil
}

// DeleteByEmailDigest removes the code for an address.
func (repo *codeRepository) DeleteByEmailDigest(ctx context.Context, digest string) error {
	err := repo.db.WithContext(ctx).
		Where("email_digest = ?", digest).
		Delete(&model.VerificationCodeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete verification code")
	}
	return nil
}

// DeleteExpired removes codes whose expiry has passed, as a safety net for
// codes abandoned mid-flow. Send counters and cooldowns are per-request
// state and do not factor into the sweep.
func (repo *codeRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&model.VerificationCodeModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired verification codes")
	}
	return result.RowsAffected, nil
}

func toCodeDomain(codeM *model.VerificationCodeModel) *entity.VerificationCode {
	return &entity.VerificationCode{
		ID:        codeM.ID,
		Count:     codeM.Count,
		Value:     codeM.Value,
		IssuedAt:  codeM.IssuedAt,
		ExpiresAt: codeM.ExpiresAt,
		Attempts:  codeM.Attempts,
		Cooldown:  codeM.Cooldown,
		Email:     codeM.Email,
		SessionID: codeM.SessionID,
	}
}

func fromCodeDomain(code *entity.VerificationCode, digest string) *model.VerificationCodeModel {
	return &model.VerificationCodeModel{
		ID:          code.ID,
		EmailDigest: digest,
		Email:       code.Email,
		Value:       code.Value,
		Count:       code.Count,
		Attempts:    code.Attempts,
		IssuedAt:    code.IssuedAt,
		ExpiresAt:   code.ExpiresAt,
		Cooldown:    code.Cooldown,
		SessionID:   code.SessionID,
	}
}
