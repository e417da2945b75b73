package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
	"session-service/infra/messaging"
)

type EndRoomUseCase interface {
	Execute(ctx context.Context, roomID int64, result domain.PlayResult, token string) (int, error)
}

type endRoomUseCase struct {
	repository RoomRepository
	resolver   userResolver
	events     EventPublisher
}

func NewEndRoomUseCase(repository RoomRepository, directory UserDirectory, sessions SessionManager, events EventPublisher) EndRoomUseCase {
	return &endRoomUseCase{
		repository: repository,
		resolver:   userResolver{directory: directory, sessions: sessions},
		events:     events,
	}
}

func (u *endRoomUseCase) Execute(ctx context.Context, roomID int64, result domain.PlayResult, token string) (int, error) {
	user, err := u.resolver.resolve(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownToken):
			return http.StatusUnauthorized, err
		case errors.Is(err, domain.ErrStorageUnavailable):
			return http.StatusServiceUnavailable, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	if err := u.repository.StoreResult(ctx, roomID, token, result); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return http.StatusNotFound, err
		case errors.Is(err, domain.ErrStorageUnavailable):
			return http.StatusServiceUnavailable, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	if u.events != nil {
		go u.events.PublishRoomEvent(context.WithoutCancel(ctx), roomID, messaging.MSG_RESULT_REPORTED,
			map[string]interface{}{"user_id": user.ID, "score": result.Score})
	}
	return http.StatusOK, nil
}
