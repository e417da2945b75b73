package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	httpUsecase "session-service/internal/api/http/usecase"
)

type GetMeRequest struct {
}

type GetMeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LeaderCardID int64  `json:"leader_card_id"`
}

type GetMeHandler struct {
	usecase httpUsecase.GetMeUseCase
}

func NewGetMeHandler(usecase httpUsecase.GetMeUseCase) *GetMeHandler {
	return &GetMeHandler{usecase: usecase}
}

func (h *GetMeHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetMeRequest) (*GetMeResponse, int, error) {
	user, status, err := h.usecase.Execute(ctx, bearerToken(fbrCtx))
	if err != nil {
		return nil, status, err
	}
	return &GetMeResponse{ID: user.ID, Name: user.Name, LeaderCardID: user.LeaderCardID}, status, nil
}
