package postgres

import (
	"context"
	"time"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// apiKeyRepository implements repository.APIKeyRepository using GORM.
type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository is the constructor for apiKeyRepository.
func NewAPIKeyRepository(db *gorm.DB) repository.APIKeyRepository {
	return &apiKeyRepository{db: db}
}

// FindByTokenDigest retrieves an API key record by the digest of its token.
// Revoked and expired keys are returned so the caller can report why a key
// was rejected.
func (repo *apiKeyRepository) FindByTokenDigest(ctx context.Context, digest string) (*entity.APIKey, error) {
	var keyM model.APIKeyModel
	if err := repo.db.WithContext(ctx).First(&keyM, "token_hash = ?", digest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}
		return nil, errors.Wrap(err, "failed to find api key by token digest")
	}
	return toAPIKeyDomain(&keyM), nil
}

// FindByID retrieves an API key record by its unique ID.
func (repo *apiKeyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.APIKey, error) {
	var keyM model.APIKeyModel
	if err := repo.db.WithContext(ctx).First(&keyM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAPIKeyNotFound
		}
		return nil, errors.Wrap(err, "failed to find api key by id")
	}
	return toAPIKeyDomain(&keyM), nil
}

// FindByUserID retrieves all API keys belonging to a user, newest first.
func (repo *apiKeyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.APIKey, error) {
	var keyMs []model.APIKeyModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&keyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find api keys by user")
	}

	keys := make([]*entity.APIKey, 0, len(keyMs))
	for i := range keyMs {
		keys = append(keys, toAPIKeyDomain(&keyMs[i]))
	}
	return keys, nil
}

// Create persists a new API key record.
func (repo *apiKeyRepository) Create(ctx context.Context, key *entity.APIKey) error {
	keyM := fromAPIKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("api key token digest already exists")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create api key")
	}

	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt
	return nil
}

// Revoke marks an API key as revoked. Revoking an already revoked key keeps
// the original revocation time.
func (repo *apiKeyRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.APIKeyModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now().UTC())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke api key")
	}
	if result.RowsAffected == 0 {
		// Either missing or already revoked; distinguish for the caller.
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.APIKeyModel{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check api key existence")
		}
		if count == 0 {
			return repository.ErrAPIKeyNotFound
		}
	}
	return nil
}

func toAPIKeyDomain(keyM *model.APIKeyModel) *entity.APIKey {
	return &entity.APIKey{
		ID:        keyM.ID,
		UserID:    keyM.UserID,
		Name:      keyM.Name,
		TokenHash: keyM.TokenHash,
		Scopes:    keyM.Scopes,
		ExpiresAt: keyM.ExpiresAt,
		CreatedAt: keyM.CreatedAt,
		RevokedAt: keyM.RevokedAt,
	}
}

func fromAPIKeyDomain(key *entity.APIKey) *model.APIKeyModel {
	return &model.APIKeyModel{
		ID:        key.ID,
		UserID:    key.UserID,
		Name:      key.Name,
		TokenHash: key.TokenHash,
		Scopes:    datatypes.NewJSONSlice(key.Scopes),
		ExpiresAt: key.ExpiresAt,
		RevokedAt: key.RevokedAt,
	}
}
