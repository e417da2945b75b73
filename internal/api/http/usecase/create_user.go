package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"session-service/domain"
)

type CreateUserUseCase interface {
	Execute(ctx context.Context, name string, leaderCardID int64) (string, int, error)
}

type createUserUseCase struct {
	directory UserDirectory
}

func NewCreateUserUseCase(directory UserDirectory) CreateUserUseCase {
	return &createUserUseCase{directory: directory}
}

func (u *createUserUseCase) Execute(ctx context.Context, name string, leaderCardID int64) (string, int, error) {
	token := uuid.NewString()
	if _, err := u.directory.CreateUser(ctx, name, token, leaderCardID); err != nil {
		switch {
		case errors.Is(err, domain.ErrStorageUnavailable):
			return "", http.StatusServiceUnavailable, err
		default:
			return "", http.StatusInternalServerError, err
		}
	}
	return token, http.StatusOK, nil
}
