package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	httpUsecase "session-service/internal/api/http/usecase"
)

type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,max=255"`
	LeaderCardID int64  `json:"leader_card_id" validate:"min=0"`
}

type CreateUserResponse struct {
	UserToken string `json:"user_token"`
}

type CreateUserHandler struct {
	usecase httpUsecase.CreateUserUseCase
}

func NewCreateUserHandler(usecase httpUsecase.CreateUserUseCase) *CreateUserHandler {
	return &CreateUserHandler{usecase: usecase}
}

func (h *CreateUserHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, int, error) {
	token, status, err := h.usecase.Execute(ctx, req.UserName, req.LeaderCardID)
	if err != nil {
		return nil, status, err
	}
	return &CreateUserResponse{UserToken: token}, status, nil
}
