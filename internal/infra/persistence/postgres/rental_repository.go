package postgres

import (
	"context"

	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/domain/repository"
	"chalet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rentalRepository implements the domain.RentalRepository interface using GORM.
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository is the constructor for rentalRepository.
func NewRentalRepository(db *gorm.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// FindByID retrieves a single rental by its unique ID.
func (repo *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	var rentalM model.RentalModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rentalM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return toRentalDomain(&rentalM), nil
}

// FindAll retrieves every rental listing, newest first.
func (repo *rentalRepository) FindAll(ctx context.Context) ([]*entity.Rental, error) {
	var rentalMs []model.RentalModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rentalMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rentals")
	}

	rentals := make([]*entity.Rental, 0, len(rentalMs))
	for i := range rentalMs {
		rentals = append(rentals, toRentalDomain(&rentalMs[i]))
	}

	return rentals, nil
}

// Create persists a new rental entity to the database.
func (repo *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	rentalM := fromRentalDomain(rental)

	if err := repo.db.WithContext(ctx).Create(rentalM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRentalCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRentalCreationFailed.WrapMessage("missing required rental information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rental")
	}

	rental.ID = rentalM.ID
	rental.CreatedAt = rentalM.CreatedAt
	rental.UpdatedAt = rentalM.UpdatedAt

	return nil
}

// Update modifies an existing rental's mutable fields. OwnerID is deliberately
// excluded from the column list: a rental's owner never changes after creation.
func (repo *rentalRepository) Update(ctx context.Context, rental *entity.Rental) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RentalModel{}).
		Where("id = ?", rental.ID).
		Updates(map[string]any{
			"name":        rental.Name,
			"surface":     rental.Surface,
			"price":       rental.Price,
			"picture":     rental.Picture,
			"description": rental.Description,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required rental information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rental")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRentalNotFound
	}

	return nil
}

// toRentalDomain converts a GORM RentalModel to a domain Rental entity.
func toRentalDomain(data *model.RentalModel) *entity.Rental {
	if data == nil {
		return nil
	}

	return &entity.Rental{
		ID:          data.ID,
		Name:        data.Name,
		Surface:     data.Surface,
		Price:       data.Price,
		Picture:     data.Picture,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRentalDomain converts a domain Rental entity to a GORM RentalModel for persistence.
func fromRentalDomain(data *entity.Rental) *model.RentalModel {
	if data == nil {
		return nil
	}

	return &model.RentalModel{
		ID:          data.ID,
		Name:        data.Name,
		Surface:     data.Surface,
		Price:       data.Price,
		Picture:     data.Picture,
		Description: data.Description,
		OwnerID:     data.OwnerID,
	}
}
