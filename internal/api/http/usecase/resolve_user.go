package httpUsecase

import (
	"context"

	"go.uber.org/zap"

	"session-service/domain"
)

// userResolver answers token -> user through the session cache, falling
// back to the directory. Cache failures are logged, never surfaced: the
// directory stays authoritative.
type userResolver struct {
	directory UserDirectory
	sessions  SessionManager
}

func (r *userResolver) resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnknownToken
	}
	if r.sessions != nil {
		user, err := r.sessions.GetUser(ctx, token)
		if err != nil {
			zap.L().Warn("Session cache lookup failed", zap.Error(err))
		} else if user != nil {
			return user, nil
		}
	}
	user, err := r.directory.GetUserByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if r.sessions != nil {
		if err := r.sessions.CacheUser(ctx, token, user); err != nil {
			zap.L().Warn("Session cache write failed", zap.Error(err))
		}
	}
	return user, nil
}
