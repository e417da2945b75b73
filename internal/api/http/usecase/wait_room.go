package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
)

type WaitRoomUseCase interface {
	Execute(ctx context.Context, roomID int64, token string) (domain.WaitRoomStatus, []domain.RoomUser, int, error)
}

type waitRoomUseCase struct {
	repository RoomRepository
	resolver   userResolver
}

func NewWaitRoomUseCase(repository RoomRepository, directory UserDirectory, sessions SessionManager) WaitRoomUseCase {
	return &waitRoomUseCase{
		repository: repository,
		resolver:   userResolver{directory: directory, sessions: sessions},
	}
}

func (u *waitRoomUseCase) Execute(ctx context.Context, roomID int64, token string) (domain.WaitRoomStatus, []domain.RoomUser, int, error) {
	if _, err := u.resolver.resolve(ctx, token); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownToken):
			return 0, nil, http.StatusUnauthorized, err
		case errors.Is(err, domain.ErrStorageUnavailable):
			return 0, nil, http.StatusServiceUnavailable, err
		default:
			return 0, nil, http.StatusInternalServerError, err
		}
	}

	status, roster, err := u.repository.WaitRoom(ctx, roomID, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorageUnavailable):
			return 0, nil, http.StatusServiceUnavailable, err
		default:
			return 0, nil, http.StatusInternalServerError, err
		}
	}
	return status, roster, http.StatusOK, nil
}
