package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	httpUsecase "session-service/internal/api/http/usecase"
)

type UpdateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,max=255"`
	LeaderCardID int64  `json:"leader_card_id" validate:"min=0"`
}

type UpdateUserResponse struct {
}

type UpdateUserHandler struct {
	usecase httpUsecase.UpdateUserUseCase
}

func NewUpdateUserHandler(usecase httpUsecase.UpdateUserUseCase) *UpdateUserHandler {
	return &UpdateUserHandler{usecase: usecase}
}

func (h *UpdateUserHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *UpdateUserRequest) (*UpdateUserResponse, int, error) {
	status, err := h.usecase.Execute(ctx, bearerToken(fbrCtx), req.UserName, req.LeaderCardID)
	if err != nil {
		return nil, status, err
	}
	return &UpdateUserResponse{}, status, nil
}
