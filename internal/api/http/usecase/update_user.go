package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"session-service/domain"
)

type UpdateUserUseCase interface {
	Execute(ctx context.Context, token, name string, leaderCardID int64) (int, error)
}

type updateUserUseCase struct {
	directory UserDirectory
	sessions  SessionManager
}

func NewUpdateUserUseCase(directory UserDirectory, sessions SessionManager) UpdateUserUseCase {
	return &updateUserUseCase{directory: directory, sessions: sessions}
}

func (u *updateUserUseCase) Execute(ctx context.Context, token, name string, leaderCardID int64) (int, error) {
	if err := u.directory.UpdateUser(ctx, token, name, leaderCardID); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownToken):
			return http.StatusUnauthorized, err
		case errors.Is(err, domain.ErrStorageUnavailable):
			return http.StatusServiceUnavailable, err
		default:
			return http.StatusInternalServerError, err
		}
	}
	if u.sessions != nil {
		if err := u.sessions.InvalidateUser(ctx, token); err != nil {
			zap.L().Warn("Session invalidation failed", zap.Error(err))
		}
	}
	return http.StatusOK, nil
}
