package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
	"session-service/infra/messaging"
)

type JoinRoomUseCase interface {
	Execute(ctx context.Context, roomID int64, difficulty domain.LiveDifficulty, token string) (domain.JoinRoomResult, int, error)
}

type joinRoomUseCase struct {
	repository RoomRepository
	resolver   userResolver
	events     EventPublisher
}

func NewJoinRoomUseCase(repository RoomRepository, directory UserDirectory, sessions SessionManager, events EventPublisher) JoinRoomUseCase {
	return &joinRoomUseCase{
		repository: repository,
		resolver:   userResolver{directory: directory, sessions: sessions},
		events:     events,
	}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, roomID int64, difficulty domain.LiveDifficulty, token string) (domain.JoinRoomResult, int, error) {
	if !difficulty.Valid() {
		return domain.JoinOtherError, http.StatusBadRequest, domain.ErrInvalidInput
	}
	user, err := u.resolver.resolve(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownToken):
			return domain.JoinOtherError, http.StatusUnauthorized, err
		case errors.Is(err, domain.ErrStorageUnavailable):
			return domain.JoinOtherError, http.StatusServiceUnavailable, err
		default:
			return domain.JoinOtherError, http.StatusInternalServerError, err
		}
	}

	result, err := u.repository.JoinRoom(ctx, roomID, difficulty, user.ID, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorageUnavailable):
			return result, http.StatusServiceUnavailable, err
		default:
			return result, http.StatusInternalServerError, err
		}
	}

	if result == domain.JoinOk && u.events != nil {
		go u.events.PublishRoomEvent(context.WithoutCancel(ctx), roomID, messaging.MSG_PLAYER_JOINED,
			map[string]interface{}{"user_id": user.ID})
	}
	return result, http.StatusOK, nil
}
