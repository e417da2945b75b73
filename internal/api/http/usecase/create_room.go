package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
	"session-service/infra/messaging"
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, liveID int64, difficulty domain.LiveDifficulty, token string) (int64, int, error)
}

type createRoomUseCase struct {
	repository RoomRepository
	resolver   userResolver
	events     EventPublisher
}

func NewCreateRoomUseCase(repository RoomRepository, directory UserDirectory, sessions SessionManager, events EventPublisher) CreateRoomUseCase {
	return &createRoomUseCase{
		repository: repository,
		resolver:   userResolver{directory: directory, sessions: sessions},
		events:     events,
	}
}

func (u *createRoomUseCase) Execute(ctx context.Context, liveID int64, difficulty domain.LiveDifficulty, token string) (int64, int, error) {
	if !difficulty.Valid() {
		return 0, http.StatusBadRequest, domain.ErrInvalidInput
	}
	user, err := u.resolver.resolve(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownToken):
			return 0, http.StatusUnauthorized, err
		case errors.Is(err, domain.ErrStorageUnavailable):
			return 0, http.StatusServiceUnavailable, err
		default:
			return 0, http.StatusInternalServerError, err
		}
	}

	roomID, err := u.repository.CreateRoom(ctx, liveID, difficulty, user.ID, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorageUnavailable):
			return 0, http.StatusServiceUnavailable, err
		default:
			return 0, http.StatusInternalServerError, err
		}
	}

	if u.events != nil {
		go u.events.PublishRoomEvent(context.WithoutCancel(ctx), roomID, messaging.MSG_ROOM_CREATED,
			map[string]interface{}{"live_id": liveID, "host_user_id": user.ID})
	}
	return roomID, http.StatusOK, nil
}
