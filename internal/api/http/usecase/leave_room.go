package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
	"session-service/infra/messaging"
)

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, roomID int64, token string) (int, error)
}

type leaveRoomUseCase struct {
	repository RoomRepository
	events     EventPublisher
}

func NewLeaveRoomUseCase(repository RoomRepository, events EventPublisher) LeaveRoomUseCase {
	return &leaveRoomUseCase{repository: repository, events: events}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, roomID int64, token string) (int, error) {
	removed, dissolved, err := u.repository.LeaveRoom(ctx, roomID, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorageUnavailable):
			return http.StatusServiceUnavailable, err
		default:
			return http.StatusInternalServerError, err
		}
	}

	// a no-op leave (not a member, room gone) is acked but not announced
	if removed && u.events != nil {
		go func(ctx context.Context) {
			u.events.PublishRoomEvent(ctx, roomID, messaging.MSG_PLAYER_LEFT, nil)
			if dissolved {
				u.events.PublishRoomEvent(ctx, roomID, messaging.MSG_ROOM_DISSOLVED, nil)
			}
		}(context.WithoutCancel(ctx))
	}
	return http.StatusOK, nil
}
