package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"session-service/domain"
	httpUsecase "session-service/internal/api/http/usecase"
)

type CreateRoomRequest struct {
	LiveID           int64                 `json:"live_id" validate:"min=0"`
	SelectDifficulty domain.LiveDifficulty `json:"select_difficulty" validate:"required,oneof=1 2"`
}

type CreateRoomResponse struct {
	RoomID int64 `json:"room_id"`
}

type CreateRoomHandler struct {
	usecase httpUsecase.CreateRoomUseCase
}

func NewCreateRoomHandler(usecase httpUsecase.CreateRoomUseCase) *CreateRoomHandler {
	return &CreateRoomHandler{usecase: usecase}
}

func (h *CreateRoomHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreateRoomRequest) (*CreateRoomResponse, int, error) {
	roomID, status, err := h.usecase.Execute(ctx, req.LiveID, req.SelectDifficulty, bearerToken(fbrCtx))
	if err != nil {
		return nil, status, err
	}
	return &CreateRoomResponse{RoomID: roomID}, status, nil
}
