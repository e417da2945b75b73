package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
	"session-service/infra/messaging"
)

type StartRoomUseCase interface {
	Execute(ctx context.Context, roomID int64, token string) (int, error)
}

type startRoomUseCase struct {
	repository RoomRepository
	events     EventPublisher
}

func NewStartRoomUseCase(repository RoomRepository, events EventPublisher) StartRoomUseCase {
	return &startRoomUseCase{repository: repository, events: events}
}

func (u *startRoomUseCase) Execute(ctx context.Context, roomID int64, token string) (int, error) {
	if err := u.repository.StartRoom(ctx, roomID, token); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return http.StatusForbidden, err
		case errors.Is(err, domain.ErrNotFound):
			return http.StatusNotFound, err
		case errors.Is(err, domain.ErrStorageUnavailable):
			return http.StatusServiceUnavailable, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	if u.events != nil {
		go u.events.PublishRoomEvent(context.WithoutCancel(ctx), roomID, messaging.MSG_LIVE_STARTED, nil)
	}
	return http.StatusOK, nil
}
