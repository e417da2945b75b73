package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
)

type RoomResultUseCase interface {
	Execute(ctx context.Context, roomID int64) ([]domain.ResultUser, int, error)
}

type roomResultUseCase struct {
	repository RoomRepository
}

func NewRoomResultUseCase(repository RoomRepository) RoomResultUseCase {
	return &roomResultUseCase{repository: repository}
}

func (u *roomResultUseCase) Execute(ctx context.Context, roomID int64) ([]domain.ResultUser, int, error) {
	results, err := u.repository.RoomResult(ctx, roomID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorageUnavailable):
			return nil, http.StatusServiceUnavailable, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}
	return results, http.StatusOK, nil
}
