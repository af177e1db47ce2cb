package impl

import (
	"context"
	"log/slog"

	deliverycontext "chalet/internal/delivery/context"
	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/domain/repository"
	"chalet/internal/domain/service"
	"chalet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage records an inquiry about a rental. The declared sender must be
// the principal itself, so no caller can file a message under another user's
// identity, and the rental must exist in the same transaction as the insert.
func (srv *messageService) SendMessage(ctx context.Context, principal *entity.Principal, input *usecase.SendMessageInput) (*entity.Message, error) {
	if err := service.RequireSelf(principal, input.UserID); err != nil {
		srv.log(ctx).Warn("Message send denied", slog.Any("rentalID", input.RentalID), slog.Any("error", err))

		return nil, err
	}

	message := &entity.Message{
		RentalID: input.RentalID,
		UserID:   input.UserID,
		Content:  input.Content,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.RentalRepo().FindByID(ctx, input.RentalID); err != nil {
			if errors.Is(err, repository.ErrRentalNotFound) {
				return domainerrors.ErrRentalNotFound.WrapMessage("cannot message a missing rental")
			}

			return errors.Wrap(err, "failed to find rental by id")
		}

		return repoFactory.MessageRepo().Create(ctx, message)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrRentalNotFound) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to execute message transaction", slog.Any("rentalID", input.RentalID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute message transaction")
	}

	srv.log(ctx).Debug("Message recorded", slog.Any("messageID", message.ID), slog.Any("rentalID", input.RentalID))

	return message, nil
}
