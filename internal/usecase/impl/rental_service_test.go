package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"chalet/config"
	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/domain/repository"
	"chalet/internal/domain/service"
	mockRepo "chalet/internal/mocks/repository"
	mockSvc "chalet/internal/mocks/service"
	"chalet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// rentalServiceFixtures holds all test dependencies for rental service tests.
type rentalServiceFixtures struct {
	service      usecase.RentalUsecase
	rentalRepo   *mockRepo.MockRentalRepository
	pictureStore *mockSvc.MockPictureStore
}

func createTestRentalService(t *testing.T, allowAnonymousReads bool) rentalServiceFixtures {
	rentalRepo := mockRepo.NewMockRentalRepository(t)
	pictureStore := mockSvc.NewMockPictureStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRentalService(RentalServiceParams{
		RentalRepo:   rentalRepo,
		PictureStore: pictureStore,
		Config: &config.Config{
			Auth: &config.AuthConfig{AllowAnonymousReads: allowAnonymousReads},
		},
		Logger: logger,
	})

	return rentalServiceFixtures{
		service:      service,
		rentalRepo:   rentalRepo,
		pictureStore: pictureStore,
	}
}

func TestRentalService_ListRentals_Success(t *testing.T) {
	fx := createTestRentalService(t, false)

	ctx := context.Background()
	listings := []*entity.Rental{
		{ID: uuid.New(), Name: "Chalet by the lake"},
		{ID: uuid.New(), Name: "Studio downtown"},
	}

	fx.rentalRepo.EXPECT().FindAll(ctx).Return(listings, nil)

	rentals, err := fx.service.ListRentals(ctx, &entity.Principal{UserID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, listings, rentals)
}

func TestRentalService_ListRentals_AnonymousDenied(t *testing.T) {
	fx := createTestRentalService(t, false)

	rentals, err := fx.service.ListRentals(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, rentals)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRentalService_ListRentals_AnonymousAllowedByConfig(t *testing.T) {
	fx := createTestRentalService(t, true)

	ctx := context.Background()

	fx.rentalRepo.EXPECT().FindAll(ctx).Return([]*entity.Rental{}, nil)

	rentals, err := fx.service.ListRentals(ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, rentals)
}

func TestRentalService_GetRental_NotFound(t *testing.T) {
	fx := createTestRentalService(t, false)

	ctx := context.Background()
	missing := uuid.New()

	fx.rentalRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrRentalNotFound)

	rental, err := fx.service.GetRental(ctx, &entity.Principal{UserID: uuid.New()}, missing)

	require.Error(t, err)
	assert.Nil(t, rental)
	assert.ErrorIs(t, err, domainerrors.ErrRentalNotFound)
}

func TestRentalService_CreateRental_Success(t *testing.T) {
	fx := createTestRentalService(t, false)

	ctx := context.Background()
	owner := &entity.Principal{UserID: uuid.New(), Email: "owner@example.com"}
	newID := uuid.New()

	fx.pictureStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", mock.Anything).
		Return("http://localhost:8080/api/rentals/images/abc.jpg", nil)

	fx.rentalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rental")).
		Run(func(ctx context.Context, rental *entity.Rental) {
			assert.Equal(t, owner.UserID, rental.OwnerID)
			assert.Equal(t, "http://localhost:8080/api/rentals/images/abc.jpg", rental.Picture)
			rental.ID = newID
		}).
		Return(nil)

	rental, err := fx.service.CreateRental(ctx, owner, &usecase.CreateRentalInput{
		Name:        "Chalet by the lake",
		Surface:     120,
		Price:       1500,
		Description: "Quiet, lake view",
		Picture: &usecase.PictureUpload{
			Filename:    "front.JPG",
			ContentType: "image/jpeg",
			Reader:      strings.NewReader("fake image bytes"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, newID, rental.ID)
	assert.Equal(t, owner.UserID, rental.OwnerID)
}

func TestRentalService_CreateRental_WithoutPicture(t *testing.T) {
	fx := createTestRentalService(t, false)

	ctx := context.Background()
	owner := &entity.Principal{UserID: uuid.New()}

	fx.rentalRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Rental")).
		Run(func(ctx context.Context, rental *entity.Rental) {
			assert.Empty(t, rental.Picture)
		}).
		Return(nil)

	rental, err := fx.service.CreateRental(ctx, owner, &usecase.CreateRentalInput{
		Name:    "Studio downtown",
		Surface: 25,
		Price:   600,
	})

	require.NoError(t, err)
	assert.Empty(t, rental.Picture)
}

func TestRentalService_CreateRental_AnonymousDenied(t *testing.T) {
	fx := createTestRentalService(t, true)

	rental, err := fx.service.CreateRental(context.Background(), nil, &usecase.CreateRentalInput{Name: "X"})

	require.Error(t, err)
	assert.Nil(t, rental)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRentalService_UpdateRental_Success(t *testing.T) {
	fx := createTestRentalService(t, false)

	ctx := context.Background()
	owner := &entity.Principal{UserID: uuid.New()}
	stored := &entity.Rental{
		ID:      uuid.New(),
		Name:    "Old name",
		Surface: 100,
		Price:   1000,
		Picture: "http://localhost:8080/api/rentals/images/abc.jpg",
		OwnerID: owner.UserID,
	}

	fx.rentalRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.rentalRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Rental")).
		Run(func(ctx context.Context, rental *entity.Rental) {
			assert.Equal(t, "New name", rental.Name)
			// Ownership survives every update.
			assert.Equal(t, owner.UserID, rental.OwnerID)
		}).
		Return(nil)

	rental, err := fx.service.UpdateRental(ctx, owner, stored.ID, &usecase.UpdateRentalInput{
		Name:        "New name",
		Surface:     110,
		Price:       1100,
		Description: "Renovated",
	})

	require.NoError(t, err)
	assert.Equal(t, "New name", rental.Name)
	assert.Equal(t, owner.UserID, rental.OwnerID)
}

func TestRentalService_UpdateRental_ReplacesPicture(t *testing.T) {
	fx := createTestRentalService(t, false)

	ctx := context.Background()
	owner := &entity.Principal{UserID: uuid.New()}
	stored := &entity.Rental{
		ID:      uuid.New(),
		Name:    "Chalet by the lake",
		Picture: "http://localhost:8080/api/rentals/images/abc.jpg",
		OwnerID: owner.UserID,
	}

	fx.rentalRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.pictureStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything).
		Return("http://localhost:8080/api/rentals/images/def.png", nil)
	fx.rentalRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Rental")).
		Run(func(ctx context.Context, rental *entity.Rental) {
			assert.Equal(t, "http://localhost:8080/api/rentals/images/def.png", rental.Picture)
		}).
		Return(nil)

	rental, err := fx.service.UpdateRental(ctx, owner, stored.ID, &usecase.UpdateRentalInput{
		Name:    "Chalet by the lake",
		Surface: 120,
		Price:   1500,
		Picture: &usecase.PictureUpload{
			Filename:    "front.PNG",
			ContentType: "image/png",
			Reader:      strings.NewReader("fake image bytes"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/rentals/images/def.png", rental.Picture)
}

func TestRentalService_UpdateRental_KeepsPictureWhenOmitted(t *testing.T) {
	fx := createTestRentalService(t, false)

	ctx := context.Background()
	owner := &entity.Principal{UserID: uuid.New()}
	stored := &entity.Rental{
		ID:      uuid.New(),
		Picture: "http://localhost:8080/api/rentals/images/abc.jpg",
		OwnerID: owner.UserID,
	}

	fx.rentalRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.rentalRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Rental")).
		Return(nil)

	rental, err := fx.service.UpdateRental(ctx, owner, stored.ID, &usecase.UpdateRentalInput{
		Name:    "Chalet by the lake",
		Surface: 120,
		Price:   1500,
	})

	require.NoError(t, err)
	assert.Equal(t, stored.Picture, rental.Picture)
}

func TestRentalService_UpdateRental_NotOwnerDenied(t *testing.T) {
	fx := createTestRentalService(t, false)

	ctx := context.Background()
	stored := &entity.Rental{ID: uuid.New(), OwnerID: uuid.New()}

	fx.rentalRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	rental, err := fx.service.UpdateRental(ctx, &entity.Principal{UserID: uuid.New()}, stored.ID, &usecase.UpdateRentalInput{Name: "Hijack"})

	require.Error(t, err)
	assert.Nil(t, rental)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRentalService_UpdateRental_AnonymousDenied(t *testing.T) {
	fx := createTestRentalService(t, true)

	ctx := context.Background()
	stored := &entity.Rental{ID: uuid.New(), OwnerID: uuid.New()}

	fx.rentalRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	rental, err := fx.service.UpdateRental(ctx, nil, stored.ID, &usecase.UpdateRentalInput{Name: "Hijack"})

	require.Error(t, err)
	assert.Nil(t, rental)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRentalService_OpenPicture_NotFound(t *testing.T) {
	fx := createTestRentalService(t, true)

	ctx := context.Background()

	fx.pictureStore.EXPECT().Open(ctx, "missing.jpg").Return(nil, service.ErrPictureNotFound)

	r, err := fx.service.OpenPicture(ctx, "missing.jpg")

	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, domainerrors.ErrPictureNotFound)
}
