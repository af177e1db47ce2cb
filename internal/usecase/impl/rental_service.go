package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"chalet/config"
	deliverycontext "chalet/internal/delivery/context"
	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/domain/repository"
	"chalet/internal/domain/service"
	"chalet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// rentalService implements the RentalUsecase interface.
type rentalService struct {
	rentalRepo          repository.RentalRepository
	pictureStore        service.PictureStore
	allowAnonymousReads bool
	logger              *slog.Logger
}

// RentalServiceParams holds dependencies for rentalService, injected by Fx.
type RentalServiceParams struct {
	fx.In

	RentalRepo   repository.RentalRepository
	PictureStore service.PictureStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRentalService is the constructor for rentalService.
func NewRentalService(params RentalServiceParams) usecase.RentalUsecase {
	allowAnonymousReads := false
	if params.Config != nil && params.Config.Auth != nil {
		allowAnonymousReads = params.Config.Auth.AllowAnonymousReads
	}

	return &rentalService{
		rentalRepo:          params.RentalRepo,
		pictureStore:        params.PictureStore,
		allowAnonymousReads: allowAnonymousReads,
		logger:              params.Logger,
	}
}

func (srv *rentalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireReader rejects anonymous callers unless anonymous reads are enabled.
func (srv *rentalService) requireReader(principal *entity.Principal) error {
	if principal == nil && !srv.allowAnonymousReads {
		return domainerrors.ErrUnauthenticated.WrapMessage("authentication required to browse rentals")
	}

	return nil
}

// ListRentals returns every published listing, newest first.
func (srv *rentalService) ListRentals(ctx context.Context, principal *entity.Principal) ([]*entity.Rental, error) {
	if err := srv.requireReader(principal); err != nil {
		return nil, err
	}

	rentals, err := srv.rentalRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list rentals", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list rentals")
	}

	return rentals, nil
}

// GetRental returns a single listing by ID.
func (srv *rentalService) GetRental(ctx context.Context, principal *entity.Principal, rentalID uuid.UUID) (*entity.Rental, error) {
	if err := srv.requireReader(principal); err != nil {
		return nil, err
	}

	rental, err := srv.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrRentalNotFound.WrapMessage("rental lookup failed")
		}
		srv.log(ctx).Error("Failed to find rental", slog.Any("rentalID", rentalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return rental, nil
}

// CreateRental publishes a new listing owned by the principal, storing the
// uploaded picture first so the record never references a missing file.
func (srv *rentalService) CreateRental(ctx context.Context, principal *entity.Principal, input *usecase.CreateRentalInput) (*entity.Rental, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("anonymous caller cannot create rentals")
	}
	srv.log(ctx).Info("Creating rental", slog.Any("ownerID", principal.UserID), slog.String("name", input.Name))

	pictureURL := ""
	if input.Picture != nil {
		url, err := srv.storePicture(ctx, input.Picture)
		if err != nil {
			srv.log(ctx).Error("Failed to store rental picture", slog.Any("ownerID", principal.UserID), slog.Any("error", err))

			return nil, domainerrors.ErrPictureUploadFailed.WrapMessage("failed to store rental picture")
		}
		pictureURL = url
	}

	rental := &entity.Rental{
		Name:        input.Name,
		Surface:     input.Surface,
		Price:       input.Price,
		Picture:     pictureURL,
		Description: input.Description,
		OwnerID:     principal.UserID,
	}

	if err := srv.rentalRepo.Create(ctx, rental); err != nil {
		srv.log(ctx).Error("Failed to create rental", slog.Any("ownerID", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create rental")
	}

	srv.log(ctx).Debug("Rental created", slog.Any("rentalID", rental.ID))

	return rental, nil
}

// UpdateRental modifies a listing after verifying the principal owns it.
// The ownership check runs before any write; OwnerID itself is never touched.
func (srv *rentalService) UpdateRental(ctx context.Context, principal *entity.Principal, rentalID uuid.UUID, input *usecase.UpdateRentalInput) (*entity.Rental, error) {
	rental, err := srv.rentalRepo.FindByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrRentalNotFound.WrapMessage("rental lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	if err := service.RequireOwner(principal, rental.OwnerID); err != nil {
		srv.log(ctx).Warn("Rental update denied", slog.Any("rentalID", rentalID), slog.Any("error", err))

		return nil, err
	}

	rental.Name = input.Name
	rental.Surface = input.Surface
	rental.Price = input.Price
	rental.Description = input.Description

	if input.Picture != nil {
		url, err := srv.storePicture(ctx, input.Picture)
		if err != nil {
			srv.log(ctx).Error("Failed to store rental picture", slog.Any("rentalID", rentalID), slog.Any("error", err))

			return nil, domainerrors.ErrPictureUploadFailed.WrapMessage("failed to store rental picture")
		}
		rental.Picture = url
	}

	if err := srv.rentalRepo.Update(ctx, rental); err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return nil, domainerrors.ErrRentalNotFound.WrapMessage("rental vanished during update")
		}
		srv.log(ctx).Error("Failed to update rental", slog.Any("rentalID", rentalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update rental")
	}

	srv.log(ctx).Debug("Rental updated", slog.Any("rentalID", rentalID))

	return rental, nil
}

// OpenPicture streams a stored rental picture by its storage key.
func (srv *rentalService) OpenPicture(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := srv.pictureStore.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrPictureNotFound) {
			return nil, domainerrors.ErrPictureNotFound.WrapMessage("picture lookup failed")
		}

		return nil, errors.Wrap(err, "failed to open picture")
	}

	return r, nil
}

// storePicture writes the upload under a random key so filenames chosen by
// clients never reach storage or URLs.
func (srv *rentalService) storePicture(ctx context.Context, picture *usecase.PictureUpload) (string, error) {
	key := uuid.New().String() + strings.ToLower(path.Ext(picture.Filename))

	return srv.pictureStore.Save(ctx, key, picture.ContentType, picture.Reader)
}
