package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"session-service/domain"
)

type GetMeUseCase interface {
	Execute(ctx context.Context, token string) (*domain.User, int, error)
}

type getMeUseCase struct {
	resolver userResolver
}

func NewGetMeUseCase(directory UserDirectory, sessions SessionManager) GetMeUseCase {
	return &getMeUseCase{resolver: userResolver{directory: directory, sessions: sessions}}
}

func (u *getMeUseCase) Execute(ctx context.Context, token string) (*domain.User, int, error) {
	user, err := u.resolver.resolve(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownToken):
			return nil, http.StatusUnauthorized, err
		case errors.Is(err, domain.ErrStorageUnavailable):
			return nil, http.StatusServiceUnavailable, err
		default:
			return nil, http.StatusInternalServerError, err
		}
	}
	return user, http.StatusOK, nil
}
