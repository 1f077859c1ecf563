// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user by id")
	}
	return toUserDomain(&userM), nil
}

// FindBySub retrieves a single user by their token subject identifier.
func (repo *userRepository) FindBySub(ctx context.Context, sub uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "sub = ?", sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user by sub")
	}
	return toUserDomain(&userM), nil
}

// FindByEmailDigest retrieves a single user by the keyed digest of their normalized email address.
func (repo *userRepository) FindByEmailDigest(ctx context.Context, digest string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email_digest = ?", digest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find user by email digest")
	}
	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Pick up the generated ID and timestamps.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":        userM.Email,
			"email_digest": userM.EmailDigest,
			"name":         userM.Name,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
// The email column holds ciphertext; decryption happens in the use case layer.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:          userM.ID,
		Sub:         userM.Sub,
		Email:       userM.Email,
		EmailDigest: userM.EmailDigest,
		Name:        userM.Name,
		CreatedAt:   userM.CreatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:          user.ID,
		Sub:         user.Sub,
		Email:       user.Email,
		EmailDigest: user.EmailDigest,
		Name:        user.Name,
		CreatedAt:   user.CreatedAt,
	}
}
