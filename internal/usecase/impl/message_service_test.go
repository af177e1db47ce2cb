package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/domain/repository"
	mockRepo "chalet/internal/mocks/repository"
	"chalet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service   usecase.MessageUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMessageService(MessageServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return messageServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := &entity.Principal{UserID: uuid.New()}
	rentalID := uuid.New()
	messageID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRentalRepo := mockRepo.NewMockRentalRepository(t)
			mockMessageRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().RentalRepo().Return(mockRentalRepo)
			mockFactory.EXPECT().MessageRepo().Return(mockMessageRepo)

			mockRentalRepo.EXPECT().
				FindByID(ctx, rentalID).
				Return(&entity.Rental{ID: rentalID, OwnerID: uuid.New()}, nil)
			mockMessageRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Message")).
				Run(func(ctx context.Context, message *entity.Message) {
					assert.Equal(t, sender.UserID, message.UserID)
					message.ID = messageID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	message, err := fx.service.SendMessage(ctx, sender, &usecase.SendMessageInput{
		RentalID: rentalID,
		UserID:   sender.UserID,
		Content:  "Is the chalet still available in July?",
	})

	require.NoError(t, err)
	assert.Equal(t, messageID, message.ID)
	assert.Equal(t, sender.UserID, message.UserID)
}

func TestMessageService_SendMessage_ImpersonationDenied(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := &entity.Principal{UserID: uuid.New()}

	// Declared sender differs from the authenticated principal: rejected
	// before any repository access.
	message, err := fx.service.SendMessage(ctx, sender, &usecase.SendMessageInput{
		RentalID: uuid.New(),
		UserID:   uuid.New(),
		Content:  "pretending to be someone else",
	})

	require.Error(t, err)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMessageService_SendMessage_AnonymousDenied(t *testing.T) {
	fx := createTestMessageService(t)

	message, err := fx.service.SendMessage(context.Background(), nil, &usecase.SendMessageInput{
		RentalID: uuid.New(),
		UserID:   uuid.New(),
		Content:  "hello",
	})

	require.Error(t, err)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestMessageService_SendMessage_RentalMissing(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	sender := &entity.Principal{UserID: uuid.New()}
	rentalID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRentalRepo := mockRepo.NewMockRentalRepository(t)

			mockFactory.EXPECT().RentalRepo().Return(mockRentalRepo)
			mockRentalRepo.EXPECT().
				FindByID(ctx, rentalID).
				Return(nil, repository.ErrRentalNotFound)

			return fn(mockFactory)
		})

	message, err := fx.service.SendMessage(ctx, sender, &usecase.SendMessageInput{
		RentalID: rentalID,
		UserID:   sender.UserID,
		Content:  "hello?",
	})

	require.Error(t, err)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrRentalNotFound)
}
