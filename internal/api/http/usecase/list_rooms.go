package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
)

type ListRoomsUseCase interface {
	Execute(ctx context.Context, liveID int64) ([]domain.RoomInfo, int, error)
}

type listRoomsUseCase struct {
	repository RoomRepository
}

func NewListRoomsUseCase(repository RoomRepository) ListRoomsUseCase {
	return &listRoomsUseCase{repository: repository}
}

func (u *listRoomsUseCase) Execute(ctx context.Context, liveID int64) ([]domain.RoomInfo, int, error) {
	rooms, err := u.repository.ListRooms(ctx, liveID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorageUnavailable):
			return nil, http.StatusServiceUnavailable, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}
	return rooms, http.StatusOK, nil
}
